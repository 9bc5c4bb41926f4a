package store

import (
	"context"
	"fmt"

	"car-rental/internal/database"
	"car-rental/internal/model"
)

func CreateCar(ctx context.Context, db database.DB, c *model.Car) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO cars (name, model, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name,
		c.Model,
		c.Status,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateCar: %w", err)
	}
	return c, nil
}

func ListCars(ctx context.Context, db database.DB) ([]model.Car, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, model, status, created_at
		 FROM cars ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCars: %w", err)
	}
	defer rows.Close()

	var cars []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Model,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListCars: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCars: %w", err)
	}
	return cars, nil
}

// UpdateCar 局部更新：nil 欄位保留原值 (COALESCE)
func UpdateCar(ctx context.Context, db database.DB, id int, name, carModel, status *string) error {
	tag, err := db.Exec(ctx,
		`UPDATE cars
		 SET name = COALESCE($1, name),
		     model = COALESCE($2, model),
		     status = COALESCE($3, status)
		 WHERE id = $4`,
		name,
		carModel,
		status,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateCar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCar(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cars WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteCar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func CountCars(ctx context.Context, db database.DB) (int, error) {
	var count int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM cars`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountCars: %w", err)
	}
	return count, nil
}
