package categories_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fjacquet/card-spend/cmd/categories"
	"fjacquet/card-spend/cmd/root"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Category,Transaction Amount
01-01-2024,Groceries,100
02-01-2024,Groceries,200
02-01-2024,Travel,15.25
01-01-2024,Travel,4.75
03-02-2024,Travel,40
05-03-2024,,99
`

var registerOnce sync.Once

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	registerOnce.Do(func() {
		root.Init()
		root.Cmd.AddCommand(categories.Cmd)
	})
	resetFlags(root.Cmd.PersistentFlags())
	resetFlags(categories.Cmd.Flags())

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(io.Discard)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.Contains(t, categories.Cmd.Short, "List category")
}

func TestCategoriesCommand_Text(t *testing.T) {
	out, err := execute(t, "categories", "--input", writeCSV(t))
	require.NoError(t, err)
	assert.Equal(t, "Category Mappings:\n0: Groceries\n1: Travel\n", out)
}

func TestCategoriesCommand_NoCategoryColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Transaction Amount\n01-01-2024,5\n"), 0600))

	_, err := execute(t, "categories", "--input", path)
	assert.EqualError(t, err, "dataset has no category column")
}

// resetFlags restores defaults so required-flag checks see a fresh command.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
