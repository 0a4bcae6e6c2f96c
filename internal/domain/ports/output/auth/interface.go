package auth

//go:generate mockery --name TokenManager --dir . --output ../../../../../mocks/auth --outpkg mocks --with-expecter --filename TokenManager.go
type TokenManager interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}

//go:generate mockery --name PasswordHasher --dir . --output ../../../../../mocks/auth --outpkg mocks --with-expecter --filename PasswordHasher.go
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
