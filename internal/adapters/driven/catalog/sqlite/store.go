package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/sqlite/migrations"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// Store is a SQLite catalog database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path and applies pending migrations.
// With create false the file must already exist.
func Open(path string, create bool) (*Store, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("catalog database: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record and builds a validated in-memory catalog.
func (s *Store) Load(ctx context.Context) (*memory.Catalog, error) {
	props, err := s.properties(ctx)
	if err != nil {
		return nil, err
	}
	hoods, err := s.neighborhoods(ctx)
	if err != nil {
		return nil, err
	}
	plats, err := s.platforms(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded %d properties, %d neighborhoods, %d platforms from %s",
		len(props), len(hoods), len(plats), s.path)

	return memory.New(props, hoods, plats)
}

// Import replaces the database contents with the records of c.
func (s *Store) Import(ctx context.Context, c driven.Catalog) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"properties", "neighborhoods", "platforms"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, p := range c.Properties() {
		if err = insertProperty(ctx, tx, i, &p); err != nil {
			return err
		}
	}
	for i, n := range c.Neighborhoods() {
		if err = insertNeighborhood(ctx, tx, i, &n); err != nil {
			return err
		}
	}
	for i, p := range c.Platforms() {
		if err = insertPlatform(ctx, tx, i, &p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCatalog opens an existing database, loads it and closes it.
func LoadCatalog(ctx context.Context, path string) (*memory.Catalog, error) {
	s, err := Open(path, false)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}

func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_catalog.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) properties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, neighborhood, description,
			bedrooms, bathrooms, max_guests, amenities, ski_in_ski_out, pet_friendly,
			price_per_night, cleaning_fee, images, rating, review_count,
			host_name, host_superhost, lat, lng,
			available_seasons, minimum_stay, blocked_dates
		FROM properties ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var props []domain.Property
	for rows.Next() {
		var (
			p                                   domain.Property
			propType                            string
			amenities, images, seasons, blocked string
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &propType, &p.Neighborhood, &p.Description,
			&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, &amenities, &p.SkiInSkiOut, &p.PetFriendly,
			&p.PricePerNight, &p.CleaningFee, &images, &p.Rating, &p.ReviewCount,
			&p.Host.Name, &p.Host.Superhost, &p.Coordinates.Lat, &p.Coordinates.Lng,
			&seasons, &p.MinimumStay, &blocked,
		); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		p.Type = domain.PropertyType(propType)

		if err := errors.Join(
			decodeList(amenities, &p.Amenities),
			decodeList(images, &p.Images),
			decodeList(seasons, &p.AvailableSeasons),
			decodeList(blocked, &p.BlockedDates),
		); err != nil {
			return nil, fmt.Errorf("property %q: %w", p.ID, err)
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (s *Store) neighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, highlights, nearest_lift, distance_to_village, elevation
		FROM neighborhoods ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying neighborhoods: %w", err)
	}
	defer rows.Close()

	var hoods []domain.Neighborhood
	for rows.Next() {
		var (
			n          domain.Neighborhood
			highlights string
		)
		if err := rows.Scan(
			&n.ID, &n.Name, &n.Description, &highlights, &n.NearestLift, &n.DistanceToVillage, &n.Elevation,
		); err != nil {
			return nil, fmt.Errorf("scanning neighborhood: %w", err)
		}
		if err := decodeList(highlights, &n.Highlights); err != nil {
			return nil, fmt.Errorf("neighborhood %q: %w", n.ID, err)
		}
		hoods = append(hoods, n)
	}
	return hoods, rows.Err()
}

func (s *Store) platforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, description, key_strengths, fee_notes, whistler_focus, property_count, best_for
		FROM platforms ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying platforms: %w", err)
	}
	defer rows.Close()

	var plats []domain.Platform
	for rows.Next() {
		var (
			p         domain.Platform
			strengths string
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.URL, &p.Description, &strengths,
			&p.FeeNotes, &p.WhistlerFocus, &p.PropertyCount, &p.BestFor,
		); err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		if err := decodeList(strengths, &p.KeyStrengths); err != nil {
			return nil, fmt.Errorf("platform %q: %w", p.ID, err)
		}
		plats = append(plats, p)
	}
	return plats, rows.Err()
}

func insertProperty(ctx context.Context, tx *sql.Tx, pos int, p *domain.Property) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO properties (
			id, position, name, type, neighborhood, description,
			bedrooms, bathrooms, max_guests, amenities, ski_in_ski_out, pet_friendly,
			price_per_night, cleaning_fee, images, rating, review_count,
			host_name, host_superhost, lat, lng,
			available_seasons, minimum_stay, blocked_dates
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, pos, p.Name, string(p.Type), p.Neighborhood, p.Description,
		p.Bedrooms, p.Bathrooms, p.MaxGuests, encodeList(p.Amenities), p.SkiInSkiOut, p.PetFriendly,
		p.PricePerNight, p.CleaningFee, encodeList(p.Images), p.Rating, p.ReviewCount,
		p.Host.Name, p.Host.Superhost, p.Coordinates.Lat, p.Coordinates.Lng,
		encodeList(p.AvailableSeasons), p.MinimumStay, encodeList(p.BlockedDates),
	)
	if err != nil {
		return fmt.Errorf("inserting property %q: %w", p.ID, err)
	}
	return nil
}

func insertNeighborhood(ctx context.Context, tx *sql.Tx, pos int, n *domain.Neighborhood) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO neighborhoods (
			id, position, name, description, highlights, nearest_lift, distance_to_village, elevation
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, pos, n.Name, n.Description, encodeList(n.Highlights), n.NearestLift, n.DistanceToVillage, n.Elevation)
	if err != nil {
		return fmt.Errorf("inserting neighborhood %q: %w", n.ID, err)
	}
	return nil
}

func insertPlatform(ctx context.Context, tx *sql.Tx, pos int, p *domain.Platform) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO platforms (
			id, position, name, url, description, key_strengths,
			fee_notes, whistler_focus, property_count, best_for
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, pos, p.Name, p.URL, p.Description, encodeList(p.KeyStrengths),
		p.FeeNotes, p.WhistlerFocus, p.PropertyCount, p.BestFor)
	if err != nil {
		return fmt.Errorf("inserting platform %q: %w", p.ID, err)
	}
	return nil
}

// encodeList stores a slice as a JSON array; nil becomes "[]".
func encodeList[T any](items []T) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeList[T any](raw string, dst *[]T) error {
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decoding list %q: %w", raw, err)
	}
	return nil
}
