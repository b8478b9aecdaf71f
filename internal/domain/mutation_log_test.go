package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func newTestMutationLog() MutationLog {
	return NewMutationLog(adapter.NewLocalSourceFSAdapter())
}

func TestMutationLog_ParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want m.MutationRecord
		ok   bool
	}{
		{
			name: "with byte offset",
			line: "1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false |==> true",
			want: m.MutationRecord{ID: "1", Mutator: "LVR", ClassKey: "pkg.Dist", Line: 47, OriginalCode: "false", MutatedCode: "true"},
			ok:   true,
		},
		{
			name: "location with member",
			line: "1:VOID_METHOD_CALLS:org.example.Test.voidMethod()V:org.example.Test.voidMethod()V:org.example.Test@testMethod:10:4555:someObject.voidMethod() |==> p",
			want: m.MutationRecord{ID: "1", Mutator: "VOID_METHOD_CALLS", ClassKey: "org.example.Test", Line: 10, OriginalCode: "someObject.voidMethod()", MutatedCode: "p"},
			ok:   true,
		},
		{
			name: "without byte offset",
			line: "2:ROR:<:<=:org.example.Test@test:15:x > 0 |==> x >= 0",
			want: m.MutationRecord{ID: "2", Mutator: "ROR", ClassKey: "org.example.Test", Line: 15, OriginalCode: "x > 0", MutatedCode: "x >= 0"},
			ok:   true,
		},
		{
			name: "no-op sentinel becomes comment",
			line: "3:STD:sig:sig:org.example.Test@method:10:54:call(); |==> <NO-OP>",
			want: m.MutationRecord{ID: "3", Mutator: "STD", ClassKey: "org.example.Test", Line: 10, OriginalCode: "call();", MutatedCode: "/*call();*/"},
			ok:   true,
		},
		{
			name: "empty mutated code stays empty",
			line: "4:STD:sig:sig:org.example.Test@method:11:60:x++; |==> ",
			want: m.MutationRecord{ID: "4", Mutator: "STD", ClassKey: "org.example.Test", Line: 11, OriginalCode: "x++;"},
			ok:   true,
		},
		{
			name: "code containing colons",
			line: "5:COR:sig:sig:a.B@c:3:9:a ? b : c |==> a ? c : b",
			want: m.MutationRecord{ID: "5", Mutator: "COR", ClassKey: "a.B", Line: 3, OriginalCode: "a ? b : c", MutatedCode: "a ? c : b"},
			ok:   true,
		},
		{
			name: "windows line ending",
			line: "6:LVR:0:1:a.B:7:1:0 |==> 1\r",
			want: m.MutationRecord{ID: "6", Mutator: "LVR", ClassKey: "a.B", Line: 7, OriginalCode: "0", MutatedCode: "1"},
			ok:   true,
		},
		{name: "empty", line: ""},
		{name: "blank", line: "   \t"},
		{name: "comment", line: "# This is a comment"},
		{name: "too few fields", line: "incomplete:line"},
		{name: "missing arrow", line: "1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false true"},
		{name: "non numeric line", line: "1:LVR:FALSE:TRUE:pkg.Dist:abc:2230:false |==> true"},
		{name: "zero line", line: "1:LVR:FALSE:TRUE:pkg.Dist:0:2230:false |==> true"},
		{name: "empty id", line: ":LVR:FALSE:TRUE:pkg.Dist:3:2230:false |==> true"},
	}

	parser := newTestMutationLog()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseLine(tt.line)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMutationLog_ParseLine_RoundTripsClause(t *testing.T) {
	parser := newTestMutationLog()

	clauses := []string{
		"false |==> true",
		"  return a + b; |==> return a - b;",
		"if (x) { |==> if (!x) {",
		"a |==> ",
	}

	for _, clause := range clauses {
		record, ok := parser.ParseLine("9:AOR:s:s:a.B@m:12:100:" + clause)
		require.True(t, ok, clause)
		assert.Equal(t, clause, record.OriginalCode+" "+mutationArrow+" "+record.MutatedCode)
	}
}

func TestMutationLog_ParseLine_UnspacedArrowIsCanonicalised(t *testing.T) {
	parser := newTestMutationLog()

	tests := []struct {
		clause    string
		canonical string
	}{
		{clause: "a |==>", canonical: "a |==> "},
		{clause: "a|==>b", canonical: "a |==> b"},
		{clause: "false|==> true", canonical: "false |==> true"},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			record, ok := parser.ParseLine("9:AOR:s:s:a.B@m:12:100:" + tt.clause)
			require.True(t, ok)

			spaced, ok := parser.ParseLine("9:AOR:s:s:a.B@m:12:100:" + tt.canonical)
			require.True(t, ok)

			assert.Equal(t, spaced, record)
			assert.Equal(t, tt.canonical, record.OriginalCode+" "+mutationArrow+" "+record.MutatedCode)
		})
	}
}

func TestMutationLog_ParseAll(t *testing.T) {
	t.Run("collapses exact duplicates", func(t *testing.T) {
		parser := newTestMutationLog()
		path := writeLog(t,
			"1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false |==> true",
			"1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false |==> true",
			"2:LVR:FALSE:TRUE:pkg.Dist:119:4410:false |==> true",
		)

		records, err := parser.ParseAll(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 47, records[0].Line)
		assert.Equal(t, 119, records[1].Line)
	})

	t.Run("keeps records differing only in mutated code", func(t *testing.T) {
		parser := newTestMutationLog()
		path := writeLog(t,
			"1:ROR:s:s:a.B@m:5:10:a < b |==> a <= b",
			"1:ROR:s:s:a.B@m:5:10:a < b |==> a != b",
		)

		records, err := parser.ParseAll(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a <= b", records[0].MutatedCode)
		assert.Equal(t, "a != b", records[1].MutatedCode)
	})

	t.Run("skips malformed and comment lines", func(t *testing.T) {
		parser := newTestMutationLog()
		path := writeLog(t,
			"# header",
			"",
			"garbage",
			"3:LVR:0:1:a.B:7:1:0 |==> 1",
		)

		records, err := parser.ParseAll(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "3", records[0].ID)
	})

	t.Run("is idempotent", func(t *testing.T) {
		parser := newTestMutationLog()
		path := writeLog(t,
			"1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false |==> true",
			"2:ROR:s:s:a.B@m:5:10:a < b |==> a <= b",
			"1:LVR:FALSE:TRUE:pkg.Dist:47:2230:false |==> true",
		)

		first, err := parser.ParseAll(context.Background(), path)
		require.NoError(t, err)
		second, err := parser.ParseAll(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing file", func(t *testing.T) {
		parser := newTestMutationLog()

		_, err := parser.ParseAll(context.Background(), m.Path(filepath.Join(t.TempDir(), MutationLogFileName)))
		require.Error(t, err)
	})
}

func TestMutationLog_Find(t *testing.T) {
	t.Run("directly under root", func(t *testing.T) {
		parser := newTestMutationLog()
		root := t.TempDir()
		log := filepath.Join(root, MutationLogFileName)
		require.NoError(t, os.WriteFile(log, []byte("x"), 0o644))

		found, err := parser.Find(context.Background(), m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Path(log), found)
	})

	t.Run("nested", func(t *testing.T) {
		parser := newTestMutationLog()
		root := t.TempDir()
		nested := filepath.Join(root, "target", "major")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		log := filepath.Join(nested, MutationLogFileName)
		require.NoError(t, os.WriteFile(log, []byte("x"), 0o644))

		found, err := parser.Find(context.Background(), m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Path(log), found)
	})

	t.Run("absent", func(t *testing.T) {
		parser := newTestMutationLog()

		_, err := parser.Find(context.Background(), m.Path(t.TempDir()))
		require.ErrorIs(t, err, ErrMutationLogNotFound)
	})
}

func writeLog(t *testing.T, lines ...string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), MutationLogFileName)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	return m.Path(path)
}
