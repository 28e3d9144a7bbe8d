package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/svit/internhub/internal/datastore"
	"github.com/svit/internhub/internal/storage"
)

// newTestStore builds a store over empty memory storage so tests start
// without the demo dataset.
func newTestStore(t *testing.T) *datastore.Store {
	t.Helper()
	ms := storage.NewMemoryStorage()
	for _, key := range []string{datastore.KeyStudents, datastore.KeyInternships, datastore.KeyCRTSessions} {
		require.NoError(t, ms.Set(key, "[]"))
	}
	return datastore.New(ms, zerolog.Nop())
}
