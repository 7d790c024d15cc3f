package db

import "database/sql"

// EnsureSchema creates the application tables when missing. The travel
// booking row keeps an exclusive reference to its flight booking; the FK
// chain makes customer and flight deletion cascade through dependent
// bookings.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'agent',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS customers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone_number VARCHAR(11) NOT NULL,
			UNIQUE KEY uniq_customers_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS flights (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			number VARCHAR(5) NOT NULL,
			departure CHAR(3) NOT NULL,
			destination CHAR(3) NOT NULL,
			UNIQUE KEY uniq_flights_number (number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			flight_id BIGINT NOT NULL,
			booking_date DATE NOT NULL,
			UNIQUE KEY uniq_flight_date (flight_id, booking_date),
			KEY idx_bookings_customer (customer_id),
			CONSTRAINT fk_bookings_customer FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
			CONSTRAINT fk_bookings_flight FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS travel_bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			flight_booking_id BIGINT NOT NULL,
			hotel_booking_id BIGINT NOT NULL,
			taxi_booking_id BIGINT NOT NULL,
			hotel_name VARCHAR(100) NOT NULL,
			hotel_phone_number VARCHAR(20) NOT NULL,
			hotel_postcode VARCHAR(10) NOT NULL,
			taxi_reg VARCHAR(20) NOT NULL,
			taxi_seats INT NOT NULL,
			booking_date DATE NOT NULL,
			UNIQUE KEY uniq_travel_flight_booking (flight_booking_id),
			KEY idx_travel_customer (customer_id),
			CONSTRAINT fk_travel_customer FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
			CONSTRAINT fk_travel_flight_booking FOREIGN KEY (flight_booking_id) REFERENCES bookings(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
