package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samadhaan/backend/internal/models"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ComplaintFilter narrows complaint listings. Zero values mean "no
// constraint"; all set fields combine with AND.
type ComplaintFilter struct {
	OwnerID  string
	Category string
	Priority string
	Status   string
	// Calendar-day window on the filing date, inclusive.
	DayStart *time.Time
	DayEnd   *time.Time
	// Case-insensitive substring match on the description.
	Search string
	// Join owner name/email into the result rows.
	WithUsers bool
}

const complaintCols = `c.id, c.category, c.description, c.priority, c.status, c.date, c.user_id, c.created_at`

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally. Backslash is the Postgres default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *Store) InsertComplaint(ctx context.Context, c models.Complaint) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO complaints (id, category, description, priority, status, date, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Category, c.Description, c.Priority, c.Status, c.Date, c.UserID, c.CreatedAt)
	return err
}

func (s *Store) ListComplaints(ctx context.Context, f ComplaintFilter) ([]models.Complaint, error) {
	query := `SELECT ` + complaintCols
	if f.WithUsers {
		query += `, COALESCE(u.name, ''), COALESCE(u.email, '')`
	}
	query += ` FROM complaints c`
	if f.WithUsers {
		query += ` LEFT JOIN users u ON u.id = c.user_id`
	}

	var args []any
	var wheres []string
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		wheres = append(wheres, fmt.Sprintf("c.user_id = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		wheres = append(wheres, fmt.Sprintf("c.category = $%d", len(args)))
	}
	if f.Priority != "" {
		args = append(args, f.Priority)
		wheres = append(wheres, fmt.Sprintf("c.priority = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		wheres = append(wheres, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if f.DayStart != nil && f.DayEnd != nil {
		args = append(args, *f.DayStart)
		wheres = append(wheres, fmt.Sprintf("c.date >= $%d", len(args)))
		args = append(args, *f.DayEnd)
		wheres = append(wheres, fmt.Sprintf("c.date <= $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		wheres = append(wheres, fmt.Sprintf("c.description ILIKE $%d", len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Complaint
	for rows.Next() {
		var c models.Complaint
		dest := []any{&c.ID, &c.Category, &c.Description, &c.Priority, &c.Status, &c.Date, &c.UserID, &c.CreatedAt}
		if f.WithUsers {
			dest = append(dest, &c.UserName, &c.UserEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetComplaint(ctx context.Context, id string) (models.Complaint, error) {
	var c models.Complaint
	err := s.Pool.QueryRow(ctx,
		`SELECT `+complaintCols+`, COALESCE(u.name, ''), COALESCE(u.email, '')
		 FROM complaints c LEFT JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`, id).
		Scan(&c.ID, &c.Category, &c.Description, &c.Priority, &c.Status, &c.Date, &c.UserID, &c.CreatedAt, &c.UserName, &c.UserEmail)
	if err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// UpdateComplaintStatus overwrites the status unconditionally. There is
// no version check: concurrent updates are last-writer-wins.
func (s *Store) UpdateComplaintStatus(ctx context.Context, id, status string) (models.Complaint, error) {
	var c models.Complaint
	err := s.Pool.QueryRow(ctx,
		`UPDATE complaints SET status = $2 WHERE id = $1
		 RETURNING id, category, description, priority, status, date, user_id, created_at`,
		id, status).
		Scan(&c.ID, &c.Category, &c.Description, &c.Priority, &c.Status, &c.Date, &c.UserID, &c.CreatedAt)
	if err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

func (s *Store) CountComplaints(ctx context.Context) (int, error) {
	var n int
	err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&n)
	return n, err
}

func (s *Store) CountComplaintsByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM complaints WHERE status = $1`, status).Scan(&n)
	return n, err
}

// DistributionBucket is one label/count pair of a grouped aggregate.
type DistributionBucket struct {
	Label string
	Count int
}

func (s *Store) CategoryDistribution(ctx context.Context) ([]DistributionBucket, error) {
	return s.distribution(ctx, `SELECT category, COUNT(*) FROM complaints GROUP BY category ORDER BY COUNT(*) DESC`)
}

// StatusDistribution carries no ordering guarantee.
func (s *Store) StatusDistribution(ctx context.Context) ([]DistributionBucket, error) {
	return s.distribution(ctx, `SELECT status, COUNT(*) FROM complaints GROUP BY status`)
}

func (s *Store) distribution(ctx context.Context, query string) ([]DistributionBucket, error) {
	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DistributionBucket
	for rows.Next() {
		var b DistributionBucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
