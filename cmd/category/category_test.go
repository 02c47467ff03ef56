package category_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fjacquet/card-spend/cmd/category"
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
		root.Cmd.AddCommand(category.Cmd)
	})
	resetFlags(root.Cmd.PersistentFlags())
	resetFlags(category.Cmd.Flags())

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(io.Discard)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestCategoryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "category", category.Cmd.Use)
	assert.Contains(t, category.Cmd.Short, "category")

	flag := category.Cmd.Flags().Lookup("code")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestCategoryCommand_Text(t *testing.T) {
	out, err := execute(t, "category", "--code", "1", "--input", writeCSV(t), "--no-chart")
	require.NoError(t, err)

	assert.Contains(t, out, "Spendings for Category 1")
	assert.Contains(t, out, "Travel")
	assert.Contains(t, out, "60.00")
}

func TestCategoryCommand_JSON(t *testing.T) {
	out, err := execute(t, "category", "--code", "0", "--input", writeCSV(t), "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"total": "300.00"`)
	assert.Contains(t, out, `"label": "Groceries"`)
	assert.NotContains(t, out, "█")
}

func TestCategoryCommand_UnknownCode(t *testing.T) {
	out, err := execute(t, "category", "--code", "7", "--input", writeCSV(t))
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found.")
}

// resetFlags restores defaults so required-flag checks see a fresh command.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
