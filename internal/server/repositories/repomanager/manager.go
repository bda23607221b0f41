package repomanager

import (
	"context"
	"database/sql"

	"github.com/ProgrammedByHussain/LandLocks/internal/dbx"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/repositories/assets"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Assets(db dbx.DBTX) assets.Repository
}
