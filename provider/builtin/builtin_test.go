package builtin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statepane/statepane/auth"
	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func titles(items []*source.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestDecode(t *testing.T) {
	Convey("Given documents in every format", t, func() {
		Convey("JSON lists of objects and strings", func() {
			items, err := decode([]byte(`[{"title":"a","url":"https://a.example"},"b",{"name":"c"}]`), formatJSON)
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"a", "b", "c"})
			So(items[0].URL, ShouldEqual, "https://a.example")
		})

		Convey("YAML wrapped in items", func() {
			items, err := decode([]byte("items:\n  - title: a\n    description: first\n  - b\n"), formatYAML)
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"a", "b"})
			So(items[0].Description, ShouldEqual, "first")
		})

		Convey("Lines, skipping blanks and comments", func() {
			items, err := decode([]byte("# header\nfirst\n\nhttps://example.com/x\n"), formatLines)
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"first", "https://example.com/x"})
			So(items[0].URL, ShouldBeEmpty)
			So(items[1].URL, ShouldEqual, "https://example.com/x")
		})

		Convey("An empty document has no items", func() {
			items, err := decode([]byte(`[]`), formatJSON)
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})

		Convey("Objects without items are rejected", func() {
			_, err := decode([]byte(`{"data":[]}`), formatJSON)
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed JSON is rejected", func() {
			_, err := decode([]byte(`[`), formatJSON)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestHTTP(t *testing.T) {
	Convey("Given an http server", t, func() {
		var authorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization = r.Header.Get("Authorization")
			switch r.URL.Path {
			case "/json":
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				_, _ = w.Write([]byte(`{"items":[{"title":"one"},{"title":"two"}]}`))
			case "/text":
				_, _ = w.Write([]byte("alpha\nbeta\n"))
			case "/empty":
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			default:
				http.Error(w, "nope", http.StatusInternalServerError)
			}
		}))
		Reset(server.Close)

		src := NewHTTP()

		Convey("JSON responses are decoded", func() {
			items, err := src.Load(context.Background(), server.URL+"/json")
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"one", "two"})
			So(items[0].Source, ShouldEqual, src)
		})

		Convey("Other responses are read as lines", func() {
			items, err := src.Load(context.Background(), server.URL+"/text")
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"alpha", "beta"})
		})

		Convey("Empty lists are not errors", func() {
			items, err := src.Load(context.Background(), server.URL+"/empty")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})

		Convey("Error statuses are errors", func() {
			_, err := src.Load(context.Background(), server.URL+"/broken")
			So(err, ShouldNotBeNil)
		})

		Convey("A stored token is sent", func() {
			So(auth.SetToken(HTTPName, "secret"), ShouldBeNil)
			Reset(func() { _ = auth.DeleteToken(HTTPName) })

			_, err := src.Load(context.Background(), server.URL+"/json")
			So(err, ShouldBeNil)
			So(authorization, ShouldEqual, "Bearer secret")
		})

		Convey("A target is required", func() {
			_, err := src.Load(context.Background(), " ")
			So(err, ShouldEqual, source.ErrNoTarget)
		})
	})
}

func TestFile(t *testing.T) {
	Convey("Given files on disk", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/data/list.yaml", []byte("- a\n- b\n"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/data/list.txt", []byte("x\ny\nz\n"), 0o644), ShouldBeNil)

		src := NewFile()

		Convey("Formats follow the extension", func() {
			items, err := src.Load(context.Background(), "/data/list.yaml")
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"a", "b"})

			items, err = src.Load(context.Background(), "/data/list.txt")
			So(err, ShouldBeNil)
			So(titles(items), ShouldResemble, []string{"x", "y", "z"})
		})

		Convey("Missing files are errors", func() {
			_, err := src.Load(context.Background(), "/data/missing.json")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDemo(t *testing.T) {
	Convey("Given the demo source", t, func() {
		src := NewDemo()

		Convey("It produces items by default", func() {
			items, err := src.Load(context.Background(), "")
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 12)
		})

		Convey("It honours the outcome", func() {
			items, err := src.Load(context.Background(), "items=3")
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 3)

			items, err = src.Load(context.Background(), "empty")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)

			_, err = src.Load(context.Background(), "error")
			So(err, ShouldEqual, ErrDemo)
		})

		Convey("It waits for the latency, unless cancelled", func() {
			start := time.Now()
			_, err := src.Load(context.Background(), "empty@20ms")
			So(err, ShouldBeNil)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 20*time.Millisecond)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = src.Load(ctx, "items@1h")
			So(err, ShouldEqual, context.Canceled)
		})

		Convey("It rejects malformed targets", func() {
			_, err := src.Load(context.Background(), "items@soon")
			So(err, ShouldNotBeNil)
			_, err = src.Load(context.Background(), "explode")
			So(err, ShouldNotBeNil)
			_, err = src.Load(context.Background(), "items=-1")
			So(err, ShouldNotBeNil)
		})
	})
}
