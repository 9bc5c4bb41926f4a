// File: internal/model/car.go
package model

import "time"

// Car 狀態為封閉列舉，僅允許以下兩種值
const (
	StatusAvailable = "Available"
	StatusRented    = "Rented"
)

type Car struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Model     string    `db:"model" json:"model"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
