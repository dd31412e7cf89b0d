//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package walkengine_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dirstamp/internal/config"
	"github.com/joe/dirstamp/internal/report"
	"github.com/joe/dirstamp/internal/walkengine"
	"github.com/joe/dirstamp/pkg/filesystem"
	"github.com/joe/dirstamp/pkg/timestamps"
)

// testEventEmitter is a simple test double for capturing events.
type testEventEmitter struct {
	events []walkengine.Event
}

func (e *testEventEmitter) Emit(event walkengine.Event) {
	e.events = append(e.events, event)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func newEngine(mode config.Mode, root string, out *bytes.Buffer) *walkengine.Engine {
	cfg := &config.Config{Root: root, StampRoot: root, Mode: mode}

	return walkengine.NewEngine(cfg, report.NewOutput(out))
}

func withScanner(engine *walkengine.Engine, scanner filesystem.Scanner) {
	engine.Open = func(string) (filesystem.Scanner, func(), error) {
		return scanner, func() {}, nil
	}
}

func TestEngine_PathsModeListsFilesInWalkOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	createTestFile(t, root, "b.txt", "b")
	createTestFile(t, root, "a.txt", "a")
	createTestFile(t, root, "sub/c.txt", "c")

	var out bytes.Buffer

	g.Expect(newEngine(config.ModePaths, root, &out).Run()).To(Succeed())
	g.Expect(out.String()).To(Equal(
		filepath.Join(root, "a.txt") + "\n" +
			filepath.Join(root, "b.txt") + "\n" +
			filepath.Join(root, "sub", "c.txt") + "\n"))
}

func TestEngine_PathsModeEmptyAndMissingRoots(t *testing.T) {
	t.Parallel()

	for name, root := range map[string]string{
		"empty":   t.TempDir(),
		"missing": filepath.Join(t.TempDir(), "does-not-exist"),
	} {
		root := root
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			var out bytes.Buffer

			g.Expect(newEngine(config.ModePaths, root, &out).Run()).To(Succeed())
			g.Expect(out.String()).To(BeEmpty())
		})
	}
}

func TestEngine_ExcludePrunesSubtree(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	createTestFile(t, root, "keep.txt", "k")
	createTestFile(t, root, "vendor/lib/x.go", "x")
	createTestFile(t, root, "notes.tmp", "n")

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, root, &out)
	engine.Exclude = "{vendor,*.tmp}"

	g.Expect(engine.Run()).To(Succeed())
	g.Expect(out.String()).To(Equal(filepath.Join(root, "keep.txt") + "\n"))
}

func TestEngine_DuplicateStopsOutput(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, ".", &out)
	withScanner(engine, filesystem.NewMockScanner(
		filesystem.File("A"),
		filesystem.File("A"),
		filesystem.File("B"),
	))

	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	err := engine.Run()

	var dup *walkengine.DuplicateError
	g.Expect(errors.As(err, &dup)).To(BeTrue())
	g.Expect(dup.Index).To(Equal(1))
	g.Expect(out.String()).To(Equal("A\n"))
	g.Expect(emitter.events).To(ContainElement(walkengine.DuplicateFound{Index: 1, Path: "A"}))
	g.Expect(emitter.events).ToNot(ContainElement(BeAssignableToTypeOf(walkengine.WalkComplete{})))
}

func TestEngine_NonAdjacentRepeatIsAllowed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, ".", &out)
	withScanner(engine, filesystem.NewMockScanner(
		filesystem.File("A"),
		filesystem.File("B"),
		filesystem.File("A"),
	))

	g.Expect(engine.Run()).To(Succeed())
	g.Expect(out.String()).To(Equal("A\nB\nA\n"))
}

func TestEngine_OpenFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	boom := errors.New("dial failed")
	engine := newEngine(config.ModePaths, "sftp://u@h/x", &out)
	engine.Open = func(string) (filesystem.Scanner, func(), error) {
		return nil, nil, boom
	}

	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Run()).To(MatchError(boom))
	g.Expect(emitter.events).To(Equal([]walkengine.Event{walkengine.ErrorOccurred{Phase: "open", Err: boom}}))
}

func TestEngine_EmitsWalkEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	createTestFile(t, root, "one.txt", "1")
	createTestFile(t, root, "two.txt", "2")

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, root, &out)
	engine.Clock = fixedClock{now: time.Unix(100, 0)}

	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Run()).To(Succeed())
	g.Expect(emitter.events).To(Equal([]walkengine.Event{
		walkengine.WalkStarted{Root: root, Mode: config.ModePaths},
		walkengine.WalkComplete{Root: root, Emitted: 2, Skipped: 0, Elapsed: 0},
	}))
}

func TestEngine_MissingRootIsSkippedNotFatal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := filepath.Join(t.TempDir(), "gone")

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, root, &out)
	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	g.Expect(engine.Run()).To(Succeed())

	var skipped, complete int

	for _, event := range emitter.events {
		switch ev := event.(type) {
		case walkengine.EntrySkipped:
			skipped++
			g.Expect(ev.Path).To(Equal(root))
			g.Expect(ev.Err).To(HaveOccurred())
		case walkengine.WalkComplete:
			complete++
			g.Expect(ev.Skipped).To(Equal(1))
			g.Expect(ev.Emitted).To(Equal(0))
		}
	}

	g.Expect(skipped).To(Equal(1))
	g.Expect(complete).To(Equal(1))
}

func stampMetadata() timestamps.Metadata {
	modified := timestamps.Instant{Sec: 1_700_000_001}

	return timestamps.Metadata{
		PortableModified: modified.Time(),
		Created:          timestamps.Instant{Sec: 1_700_000_000, Nsec: 100},
		HasCreated:       true,
		Modified:         modified,
		StatusChanged:    timestamps.Instant{Sec: 1_700_000_002},
	}
}

func TestEngine_StampsModeWritesBlockPerRegularFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	engine := newEngine(config.ModeStamps, "src", &out)
	withScanner(engine, filesystem.NewMockScanner(
		filesystem.Dir("src"),
		filesystem.File("src/a.txt"),
		filesystem.Symlink("src/link"),
	))
	engine.Normalizer = timestamps.NewNormalizer(
		timestamps.WithLocation(time.FixedZone("TST", 3*60*60)),
		timestamps.WithClock(fixedClock{now: time.Unix(1_700_000_010, 0)}),
		timestamps.WithMetadataReader(func(string) (timestamps.Metadata, error) {
			return stampMetadata(), nil
		}),
	)

	g.Expect(engine.Run()).To(Succeed())
	g.Expect(out.String()).To(Equal(
		"path=src/a.txt\n" +
			"btime=2023-11-15T01:13:20.0000001+03:00 btime_system={Sec:1700000000 Nsec:100} " +
			"btime_unix=1700000000,100 btime_elapsed=9.9999999s\n" +
			"mtime=2023-11-15T01:13:21+03:00 mtime_system={Sec:1700000001 Nsec:0} " +
			"mtime_unix=1700000001,0 mtime_elapsed=9s\n" +
			"ctime=2023-11-15T01:13:22+03:00\n"))
}

func TestEngine_StampsModeFailureStopsWithoutPartialOutput(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	engine := newEngine(config.ModeStamps, "src", &out)
	withScanner(engine, filesystem.NewMockScanner(
		filesystem.File("src/a.txt"),
		filesystem.File("src/b.txt"),
	))

	calls := 0
	engine.Normalizer = timestamps.NewNormalizer(
		timestamps.WithClock(fixedClock{now: time.Unix(1_700_000_010, 0)}),
		timestamps.WithMetadataReader(func(string) (timestamps.Metadata, error) {
			calls++
			md := stampMetadata()
			md.Created = timestamps.Instant{Sec: 1_700_000_005}

			return md, nil
		}),
	)

	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)

	err := engine.Run()

	g.Expect(err).To(MatchError(timestamps.ErrOrderingViolation))
	g.Expect(out.String()).To(BeEmpty())
	g.Expect(calls).To(Equal(1))
	g.Expect(emitter.events).To(ContainElement(BeAssignableToTypeOf(walkengine.ErrorOccurred{})))
}

func TestEngine_SetEventEmitter(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	engine := newEngine(config.ModePaths, t.TempDir(), &out)
	g.Expect(engine.GetEventEmitter()).To(BeNil())

	emitter := &testEventEmitter{}
	engine.SetEventEmitter(emitter)
	g.Expect(engine.GetEventEmitter()).To(Equal(emitter))

	engine.SetEventEmitter(nil)
	g.Expect(engine.Run()).To(Succeed())
}
