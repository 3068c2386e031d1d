package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is a squirrel statement builder configured for Postgres
// placeholders ($1, $2, ...).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT statement with Postgres placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT statement with Postgres placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE statement with Postgres placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE statement with Postgres placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
