package commands

import (
	"fmt"
	"log"

	"timeclock/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE user_role AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'MANAGER', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "CREATE TYPE user_status AS ENUM",
		Query: `
        CREATE TYPE "user_status" AS ENUM ('ACTIVE', 'INACTIVE');`,
	},
	{
		Index:       3,
		Description: "CREATE TYPE shift_status AS ENUM",
		Query: `
        CREATE TYPE "shift_status" AS ENUM ('SCHEDULED', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED');`,
	},
	{
		Index:       4,
		Description: "CREATE TYPE request_status AS ENUM",
		Query: `
        CREATE TYPE "request_status" AS ENUM ('PENDING', 'APPROVED', 'DENIED');`,
	},
	{
		Index:       5,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null,
            password text not null,
            first_name text,
            last_name text,
            phone text,
            role user_role default 'EMPLOYEE',
            status user_status default 'ACTIVE',
            pin varchar(6),
            pin_changed_at timestamp,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Unique email among live users.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique
            ON users (email) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       7,
		Description: "Unique PIN among ACTIVE users. Closes the assign-PIN race.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS users_pin_active_unique
            ON users (pin) WHERE status = 'ACTIVE' AND deleted_at IS NULL AND pin IS NOT NULL;`,
	},
	{
		Index:       8,
		Description: "Create admin with email: admin@timeclock.local, password: admin123",
		Query: `
        INSERT INTO users(email, role, status, password, first_name, last_name, pin)
        SELECT 'admin@timeclock.local', 'ADMIN', 'ACTIVE', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2', 'Admin', 'User', '9999'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@timeclock.local');
        `,
	},
	{
		Index:       9,
		Description: "Create table: shifts.",
		Query: `
        CREATE TABLE IF NOT EXISTS shifts (
            id serial primary key,
            user_id int not null references users(id),
            start_time timestamp not null,
            end_time timestamp not null,
            status shift_status default 'SCHEDULED',
            location text,
            position text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: time_entries.",
		Query: `
        CREATE TABLE IF NOT EXISTS time_entries (
            id serial primary key,
            user_id int not null references users(id),
            shift_id int not null references shifts(id),
            clock_in_time timestamp not null,
            clock_out_time timestamp,
            total_hours numeric(6,2),
            manual_entry boolean default false,
            manual_entry_by int references users(id),
            manual_entry_note text,
            tablet_id text,
            tablet_location text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       11,
		Description: "One open entry per user. Closes the double clock-in race.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS time_entries_open_unique
            ON time_entries (user_id) WHERE clock_out_time IS NULL AND deleted_at IS NULL;`,
	},
	{
		Index:       12,
		Description: "Create table: time_off_requests.",
		Query: `
        CREATE TABLE IF NOT EXISTS time_off_requests (
            id serial primary key,
            user_id int not null references users(id),
            start_date date not null,
            end_date date not null,
            type text not null,
            reason text,
            status request_status default 'PENDING',
            reviewed_by int references users(id),
            reviewed_at timestamp,
            manager_notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       13,
		Description: "Create table: shift_change_requests.",
		Query: `
        CREATE TABLE IF NOT EXISTS shift_change_requests (
            id serial primary key,
            user_id int not null references users(id),
            original_shift_id int not null references shifts(id),
            requested_start_time timestamp not null,
            requested_end_time timestamp not null,
            reason text,
            status request_status default 'PENDING',
            reviewed_by int references users(id),
            reviewed_at timestamp,
            manager_notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       14,
		Description: "One PENDING change request per shift.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS shift_change_requests_pending_unique
            ON shift_change_requests (original_shift_id) WHERE status = 'PENDING' AND deleted_at IS NULL;`,
	},
	{
		Index:       15,
		Description: "Create table: notifications.",
		Query: `
        CREATE TABLE IF NOT EXISTS notifications (
            id serial primary key,
            user_id int not null references users(id),
            type text not null,
            message text not null,
            read boolean default false,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
