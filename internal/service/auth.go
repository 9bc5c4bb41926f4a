// File: internal/service/auth.go
package service

import (
	"crypto/subtle"
	"errors"

	"car-rental/internal/model"
)

// AuthenticateUser 根據使用者結構和明文密碼驗證
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// AdminCredentials 後台操作員帳密，由啟動時環境變數注入
type AdminCredentials struct {
	Email    string
	Password string
}

// Match 以常數時間比較帳密，兩者皆相符才回傳 true
func (a AdminCredentials) Match(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(a.Email), []byte(email))
	passwordOK := subtle.ConstantTimeCompare([]byte(a.Password), []byte(password))
	return emailOK&passwordOK == 1
}
