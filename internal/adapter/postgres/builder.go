package postgres

import "github.com/Masterminds/squirrel"

// Builder is the statement builder used by all repositories.
// PostgreSQL placeholders ($1, $2, ...).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
