package expression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvheim/fkit/pkg/paths"
)

func TestCompile(t *testing.T) {
	compiled, err := Compile([]string{`Size > 100`, `FileName == "a.txt"`})
	require.NoError(t, err)
	assert.Len(t, compiled, 2)
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile([]string{`Size >`})
	assert.Error(t, err)
}

func TestCompile_NonBool(t *testing.T) {
	_, err := Compile([]string{`Size + 1`})
	assert.Error(t, err)
}

func TestCheckFileAllMatch(t *testing.T) {
	f := paths.File{
		Path:         "/data/photos/img.jpg",
		FileName:     "img.jpg",
		Directory:    "/data/photos",
		Size:         2048,
		ModifiedTime: time.Now(),
	}

	compiled, err := Compile([]string{`Size > 1024`, `Ext() == ".jpg"`})
	require.NoError(t, err)

	match, err := CheckFileAllMatch(f, compiled)
	require.NoError(t, err)
	assert.True(t, match)

	f.Size = 10
	match, err = CheckFileAllMatch(f, compiled)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCheckFileSingleMatchWithReason(t *testing.T) {
	f := paths.File{FileName: "notes.txt", Size: 5}

	compiled, err := Compile([]string{`Size > 1024`, `Ext() == ".txt"`})
	require.NoError(t, err)

	match, reason, err := CheckFileSingleMatchWithReason(f, compiled)
	require.NoError(t, err)
	assert.True(t, match)
	assert.Equal(t, `Ext() == ".txt"`, reason)
}

func TestFilterFiles(t *testing.T) {
	files := []paths.File{
		{FileName: "a.txt", Size: 10},
		{FileName: "b.jpg", Size: 20},
		{FileName: "c.txt", Size: 30},
	}

	compiled, err := Compile([]string{`Ext() == ".txt"`})
	require.NoError(t, err)

	filtered, err := FilterFiles(files, compiled)
	require.NoError(t, err)

	require.Len(t, filtered, 2)
	assert.Equal(t, "a.txt", filtered[0].FileName)
	assert.Equal(t, "c.txt", filtered[1].FileName)
}

func TestFilterFiles_NoExpressions(t *testing.T) {
	files := []paths.File{{FileName: "a.txt"}}

	filtered, err := FilterFiles(files, nil)
	require.NoError(t, err)
	assert.Equal(t, files, filtered)
}
