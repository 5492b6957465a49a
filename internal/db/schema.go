package db

import "database/sql"

// Migrate creates the schema when missing. Statements are idempotent so the
// server can start against an empty database.
func Migrate(database *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(80) NOT NULL,
			email VARCHAR(120) NOT NULL,
			role ENUM('member','admin') NOT NULL DEFAULT 'member',
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_users_username (username),
			UNIQUE KEY uniq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS destinations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			air TINYINT(1) NOT NULL DEFAULT 0,
			coach TINYINT(1) NOT NULL DEFAULT 0,
			train TINYINT(1) NOT NULL DEFAULT 0,
			status ENUM('active','inactive') NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_destinations_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS avenues (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			leave_destination_id BIGINT NOT NULL,
			arrive_destination_id BIGINT NOT NULL,
			leave_time TIME NOT NULL,
			arrive_time TIME NOT NULL,
			price DOUBLE NOT NULL,
			status ENUM('active','inactive') NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_avenues_schedule (leave_destination_id, arrive_destination_id, leave_time, arrive_time),
			CONSTRAINT fk_avenues_leave FOREIGN KEY (leave_destination_id) REFERENCES destinations(id),
			CONSTRAINT fk_avenues_arrive FOREIGN KEY (arrive_destination_id) REFERENCES destinations(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			identifier VARCHAR(32) NOT NULL,
			avenue_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			date DATE NOT NULL,
			mode ENUM('air','coach','train') NOT NULL,
			type ENUM('economy','business','first') NOT NULL,
			seat INT NOT NULL,
			price DOUBLE NOT NULL,
			status ENUM('pending','confirmed','cancelled') NOT NULL DEFAULT 'pending',
			ticket ENUM('scanned','unscanned') NOT NULL DEFAULT 'unscanned',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_bookings_identifier (identifier),
			KEY idx_bookings_capacity (avenue_id, date, mode, status),
			KEY idx_bookings_user (user_id),
			CONSTRAINT fk_bookings_avenue FOREIGN KEY (avenue_id) REFERENCES avenues(id),
			CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			identifier VARCHAR(32) NOT NULL,
			booking_id BIGINT NULL,
			amount DOUBLE NOT NULL,
			payment_method ENUM('paypal','revolut','stripe') NOT NULL,
			status ENUM('pending','success','failed') NOT NULL DEFAULT 'pending',
			type ENUM('payment','refund') NOT NULL DEFAULT 'payment',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_transactions_identifier (identifier),
			KEY idx_transactions_booking (booking_id),
			CONSTRAINT fk_transactions_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS faqs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			question VARCHAR(100) NOT NULL,
			answer TEXT NOT NULL,
			status ENUM('active','inactive') NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS legal_pages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(80) NOT NULL,
			content TEXT NOT NULL,
			status ENUM('active','inactive') NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_legal_pages_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS changelogs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			content TEXT NOT NULL,
			version VARCHAR(50) NOT NULL,
			status ENUM('active','inactive') NOT NULL DEFAULT 'inactive',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS contacts (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			subject VARCHAR(100) NOT NULL,
			message TEXT NOT NULL,
			status ENUM('unread','read') NOT NULL DEFAULT 'unread',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
