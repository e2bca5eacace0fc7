package provider

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Built-in providers are always available", t, func() {
		for _, name := range []string{"demo", "file", "http"} {
			p, ok := Get(name)
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.Name(), ShouldEqual, name)
		}
	})
}

func TestCustomProviders(t *testing.T) {
	Convey("Given Lua scripts in the sources directory", t, func() {
		fs := filesystem.API()
		dir := where.Sources()
		So(fs.WriteFile(filepath.Join(dir, "zeta.lua"), []byte(`function Load(t) return { { title = t } } end`), 0o644), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(dir, "alpha.lua"), []byte(`function Load(t) return {} end`), 0o644), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(dir, "demo.lua"), []byte(`function Load(t) return {} end`), 0o644), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`not a source`), 0o644), ShouldBeNil)

		Convey("They are listed by name", func() {
			providers, err := CustomProviders()
			So(err, ShouldBeNil)
			So(providers, ShouldHaveLength, 3)
			So(providers[0].Name, ShouldEqual, "alpha")
			So(providers[2].Name, ShouldEqual, "zeta")
		})

		Convey("Built-in names win", func() {
			p, ok := Get("demo")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)
		})

		Convey("They load", func() {
			p, ok := Get("zeta")
			So(ok, ShouldBeTrue)

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			items, err := src.Load(context.Background(), "hello")
			So(err, ShouldBeNil)
			So(items[0].Title, ShouldEqual, "hello")
		})
	})
}
