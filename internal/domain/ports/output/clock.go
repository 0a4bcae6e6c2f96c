package ports

import "time"

//go:generate mockery --name Clock --dir . --output ../../../../mocks/ports --outpkg mocks --with-expecter --filename Clock.go
type Clock interface {
	Now() time.Time
}
