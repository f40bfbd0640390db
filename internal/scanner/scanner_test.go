package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/ipcgen/internal/models"
)

func TestScanner_MatchFile(t *testing.T) {
	scanner := NewScanner()

	t.Run("full match with multiple methods", func(t *testing.T) {
		content := `
@backendAPI("Users")
class UserService {
  @route()
  async list() {
    return this.repo.list();
  }

  @route()
  async get(id: string) {
    return this.repo.get(id);
  }
}
`
		result := scanner.MatchFile(content)
		require.True(t, result.Matched())

		match := result.Match
		assert.Equal(t, "Users", match.Group)
		assert.Equal(t, "UserService", match.ClassName)
		require.Len(t, match.Methods, 2)
		assert.Equal(t, "list", match.Methods[0].Name)
		assert.Equal(t, "", match.Methods[0].RawParams)
		assert.Equal(t, "get", match.Methods[1].Name)
		assert.Equal(t, "id: string", match.Methods[1].RawParams)
	})

	t.Run("no group marker skips file", func(t *testing.T) {
		content := `
class Helper {
  @route()
  async run() {}
}
`
		result := scanner.MatchFile(content)
		assert.False(t, result.Matched())
		assert.Equal(t, models.SkipNoGroupMarker, result.Skip)
	})

	t.Run("group without class skips file", func(t *testing.T) {
		// Declared methods are lost along with the file; this mirrors
		// the historical behavior even though it loses data
		content := `
@backendAPI("Orphan")
const handlers = {};
`
		result := scanner.MatchFile(content)
		assert.False(t, result.Matched())
		assert.Equal(t, models.SkipNoClassName, result.Skip)
	})

	t.Run("whitespace inside markers is tolerated", func(t *testing.T) {
		content := `
@backendAPI( "Files" )
class FileService {
  @route( ) async read(path: string) {}
}
`
		result := scanner.MatchFile(content)
		require.True(t, result.Matched())
		assert.Equal(t, "Files", result.Match.Group)
		require.Len(t, result.Match.Methods, 1)
		assert.Equal(t, "read", result.Match.Methods[0].Name)
	})

	t.Run("first class declaration wins", func(t *testing.T) {
		content := `
@backendAPI("Sessions")
class SessionService {}
class SessionHelper {}
`
		result := scanner.MatchFile(content)
		require.True(t, result.Matched())
		assert.Equal(t, "SessionService", result.Match.ClassName)
	})

	t.Run("async method without route marker is ignored", func(t *testing.T) {
		content := `
@backendAPI("Users")
class UserService {
  async internal() {}

  @route()
  async visible() {}
}
`
		result := scanner.MatchFile(content)
		require.True(t, result.Matched())
		require.Len(t, result.Match.Methods, 1)
		assert.Equal(t, "visible", result.Match.Methods[0].Name)
	})

	t.Run("group with zero routed methods matches with empty methods", func(t *testing.T) {
		content := `
@backendAPI("Empty")
class EmptyService {
  async notRouted() {}
}
`
		result := scanner.MatchFile(content)
		require.True(t, result.Matched())
		assert.Empty(t, result.Match.Methods)
	})
}
