package repotest

import (
	"io/fs"
	"testing"

	"github.com/dmitrijs2005/studydesk/internal/server/migrations"
)

func mustSub(t testing.TB, dir string) fs.FS {
	t.Helper()
	sub, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		t.Fatalf("migrations %s: %v", dir, err)
	}
	return sub
}
