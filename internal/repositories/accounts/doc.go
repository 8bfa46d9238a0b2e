// Package accounts persists registered patients.
//
// Repository is implemented twice over dbx.DBTX: SQLiteRepository for the
// on-device database and PostgresRepository for a shared server database.
// Both expect the schema from internal/migrations. Phone numbers are unique
// and patient IDs are unique ignoring case; violations surface as
// common.ErrorAlreadyExists. Lookups that match nothing return
// common.ErrorNotFound.
//
// Typical Usage
//
//	repo := accounts.NewSQLiteRepository(db)
//	id, _ := repo.Upsert(ctx, &models.Account{...})
//	acc, _ := repo.GetByPhone(ctx, "0771234567")
package accounts
