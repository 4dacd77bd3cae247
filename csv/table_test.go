package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTable_WritePageTable(t *testing.T) {
	t.Parallel()

	t.Run("writes quoted header and rows", func(t *testing.T) {
		t.Parallel()

		records := []*pagegraph.PageRecord{
			{RelativeDir: "", Filename: "index", Title: "Home"},
			{RelativeDir: "sub", Filename: "child", Keywords: "a;b", Description: `say "hi"`, Module: "m", Title: "Child"},
		}

		var buf bytes.Buffer
		err := csv.NewPageTable().WritePageTable(&buf, records)

		require.NoError(t, err)
		want := `"relative_dir";"filename";"keywords";"description";"module";"title"` + "\r\n" +
			`"";"index";"";"";"";"Home"` + "\r\n" +
			`"sub";"child";"a;b";"say ""hi""";"m";"Child"` + "\r\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("encodes as Windows-1252", func(t *testing.T) {
		t.Parallel()

		records := []*pagegraph.PageRecord{
			{Filename: "prix", Title: "Café 5€"},
		}

		var buf bytes.Buffer
		err := csv.NewPageTable().WritePageTable(&buf, records)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "\"Caf\xe9 5\x80\"")
	})

	t.Run("replaces characters outside the encoding", func(t *testing.T) {
		t.Parallel()

		records := []*pagegraph.PageRecord{
			{Filename: "intl", Title: "日本 ✓ ok"},
		}

		var buf bytes.Buffer
		err := csv.NewPageTable().WritePageTable(&buf, records)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"?? ? ok"`)
	})

	t.Run("writes header only for no records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := csv.NewPageTable().WritePageTable(&buf, nil)

		require.NoError(t, err)
		assert.Equal(t, `"relative_dir";"filename";"keywords";"description";"module";"title"`+"\r\n", buf.String())
	})
}

func TestPageTable_ReadPageTable(t *testing.T) {
	t.Parallel()

	t.Run("round trips records", func(t *testing.T) {
		t.Parallel()

		records := []*pagegraph.PageRecord{
			{RelativeDir: "", Filename: "index", Keywords: "home", Title: "Welcome"},
			{RelativeDir: "guide/setup", Filename: "install", Description: "line one\nline two", Module: "core", Title: `Quote "this"; ok`},
			{RelativeDir: "fr", Filename: "accueil", Title: "Élève à l'école"},
		}
		table := csv.NewPageTable()

		var buf bytes.Buffer
		require.NoError(t, table.WritePageTable(&buf, records))
		got, err := table.ReadPageTable(&buf)

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("maps columns by header name", func(t *testing.T) {
		t.Parallel()

		input := "\"title\";\"filename\";\"extra\";\"relative_dir\"\r\n" +
			"\"Child\";\"child\";\"x\";\"sub\"\r\n"

		got, err := csv.NewPageTable().ReadPageTable(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []*pagegraph.PageRecord{
			{RelativeDir: "sub", Filename: "child", Title: "Child"},
		}, got)
	})

	t.Run("decodes Windows-1252", func(t *testing.T) {
		t.Parallel()

		input := "\"relative_dir\";\"filename\";\"title\"\r\n\"\";\"caf\xe9\";\"5\x80\"\r\n"

		got, err := csv.NewPageTable().ReadPageTable(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "café", got[0].Filename)
		assert.Equal(t, "5€", got[0].Title)
	})

	t.Run("tolerates short rows", func(t *testing.T) {
		t.Parallel()

		input := "relative_dir;filename;title\r\nsub;child\r\n"

		got, err := csv.NewPageTable().ReadPageTable(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []*pagegraph.PageRecord{{RelativeDir: "sub", Filename: "child"}}, got)
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		t.Parallel()

		got, err := csv.NewPageTable().ReadPageTable(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects table without filename column", func(t *testing.T) {
		t.Parallel()

		input := "relative_dir;title\r\nsub;Child\r\n"

		_, err := csv.NewPageTable().ReadPageTable(strings.NewReader(input))

		require.Error(t, err)
		assert.Equal(t, pagegraph.EINVALID, pagegraph.ErrorCode(err))
	})

	t.Run("rejects malformed quoting", func(t *testing.T) {
		t.Parallel()

		input := "relative_dir;filename\r\n\"sub;child\r\n"

		_, err := csv.NewPageTable().ReadPageTable(strings.NewReader(input))

		require.Error(t, err)
		assert.Equal(t, pagegraph.EINVALID, pagegraph.ErrorCode(err))
	})
}
