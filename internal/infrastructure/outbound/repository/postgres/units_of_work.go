package postgres

import (
	"context"
	"fmt"

	ports "microblog-service/internal/domain/ports/output"
	follow_repository "microblog-service/internal/domain/ports/output/follow"
	post_repository "microblog-service/internal/domain/ports/output/post"
	user_repository "microblog-service/internal/domain/ports/output/user"
	"microblog-service/internal/domain/ports/output/uow"
	follow_repository_postgres "microblog-service/internal/infrastructure/outbound/repository/follow/postgres"
	post_repository_postgres "microblog-service/internal/infrastructure/outbound/repository/post/postgres"
	user_repository_postgres "microblog-service/internal/infrastructure/outbound/repository/user/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger, metrics ports.MetricsProvider) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log, metrics: u.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) UserRepository() user_repository.Repository {
	return user_repository_postgres.NewUserRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) FollowRepository() follow_repository.Repository {
	return follow_repository_postgres.NewFollowRepository(t.tx, t.log, t.metrics)
}
