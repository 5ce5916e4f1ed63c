package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"reelpick/internal/dataset"
)

//go:embed schema.sql
var schemaSQL string

// Store answers dataset queries from an in-memory SQLite database. It is
// populated once at startup via Load and read-only afterward.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory store and applies the schema.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// The connection pool must not exceed one connection: each :memory:
	// connection is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load bulk-inserts the movie records and their exploded genre rows.
func (s *Store) Load(ctx context.Context, movies []dataset.Movie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertMovie, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (title, genres, overview, rating, combined) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare movie insert: %w", err)
	}
	defer insertMovie.Close()

	insertGenre, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO movie_genres (movie_id, genre) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare genre insert: %w", err)
	}
	defer insertGenre.Close()

	for _, movie := range movies {
		res, err := insertMovie.ExecContext(ctx,
			movie.Title, movie.Genres, movie.Overview, movie.Rating, movie.Combined)
		if err != nil {
			return fmt.Errorf("insert movie %q: %w", movie.Title, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		for _, genre := range dataset.SplitGenres(movie.Genres) {
			if _, err := insertGenre.ExecContext(ctx, id, genre); err != nil {
				return fmt.Errorf("insert genre %q: %w", genre, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load tx: %w", err)
	}
	return nil
}

// Eligible returns the movies matching the given constraints in insertion
// order. An empty genre means no genre constraint; a nil minRating means no
// rating constraint. Genre matching is case-insensitive containment against
// the raw genre field, so "drama" matches a record tagged "Action, Drama".
func (s *Store) Eligible(ctx context.Context, genre string, minRating *float64) ([]dataset.Movie, error) {
	query := `SELECT title, genres, overview, rating, combined FROM movies`
	var clauses []string
	var args []any
	if genre != "" {
		clauses = append(clauses, "instr(lower(genres), lower(?)) > 0")
		args = append(args, genre)
	}
	if minRating != nil {
		clauses = append(clauses, "rating >= ?")
		args = append(args, *minRating)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query eligible movies: %w", err)
	}
	defer rows.Close()

	var movies []dataset.Movie
	for rows.Next() {
		var movie dataset.Movie
		if err := rows.Scan(&movie.Title, &movie.Genres, &movie.Overview, &movie.Rating, &movie.Combined); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

// GenreCount pairs a genre name with the number of movies carrying it.
type GenreCount struct {
	Genre  string
	Movies int
}

// GenreCounts returns every distinct genre with its movie count, in
// lexicographic genre order.
func (s *Store) GenreCounts(ctx context.Context) ([]GenreCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT genre, COUNT(movie_id) FROM movie_genres GROUP BY genre ORDER BY genre`)
	if err != nil {
		return nil, fmt.Errorf("query genre counts: %w", err)
	}
	defer rows.Close()

	var counts []GenreCount
	for rows.Next() {
		var gc GenreCount
		if err := rows.Scan(&gc.Genre, &gc.Movies); err != nil {
			return nil, fmt.Errorf("scan genre count: %w", err)
		}
		counts = append(counts, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre counts: %w", err)
	}
	return counts, nil
}

// Count reports how many movies the store holds.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}
