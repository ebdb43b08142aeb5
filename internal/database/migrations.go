package database

import "github.com/zizouhuweidi/trivia/internal/domain"

// DefaultCategories returns the categories created by the seed SQL
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

const postgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id SERIAL PRIMARY KEY,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id SERIAL PRIMARY KEY,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    category INTEGER NOT NULL,
    difficulty INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`

const postgresSeedCategoriesSQL = `
INSERT INTO categories (id, type) VALUES
    (1, 'Science'),
    (2, 'Art'),
    (3, 'Geography'),
    (4, 'History'),
    (5, 'Entertainment'),
    (6, 'Sports')
ON CONFLICT (id) DO NOTHING;

SELECT setval(pg_get_serial_sequence('categories', 'id'), GREATEST((SELECT MAX(id) FROM categories), 1));
`

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    category INTEGER NOT NULL,
    difficulty INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`

const sqliteSeedCategoriesSQL = `
INSERT OR IGNORE INTO categories (id, type) VALUES
    (1, 'Science'),
    (2, 'Art'),
    (3, 'Geography'),
    (4, 'History'),
    (5, 'Entertainment'),
    (6, 'Sports');
`
