package config

import (
	"testing"
	"time"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given the config setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every key has a default", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Durations are read as durations", func() {
			So(viper.GetDuration(key.ViewstateToLoadingDelay), ShouldEqual, time.Second)
			So(viper.GetDuration(key.TUIFadeDuration), ShouldEqual, 200*time.Millisecond)
		})

		Convey("Keys map to prefixed env variables", func() {
			field := Default[key.ViewstateFromLoadingDelay]
			So(field.Env(), ShouldEqual, "STATEPANE_VIEWSTATE_FROM_LOADING_DELAY")
			So(EnvKeyReplacer.Replace("a.b.c"), ShouldEqual, "a_b_c")
		})
	})
}

func TestFieldParse(t *testing.T) {
	Convey("Given config fields", t, func() {
		Convey("Durations parse and normalize", func() {
			field := Default[key.ViewstateToLoadingDelay]
			v, err := field.Parse([]string{"1500ms"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.5s")
			So(field.typeName(), ShouldEqual, "duration")

			_, err = field.Parse([]string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans and ints are checked", func() {
			animate := Default[key.ViewstateAnimate]
			v, err := animate.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			spacing := Default[key.TUIItemSpacing]
			_, err = spacing.Parse([]string{"wide"})
			So(err, ShouldNotBeNil)
		})

		Convey("A missing value is an error", func() {
			field := Default[key.SourcesDefault]
			_, err := field.Parse(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Pretty mentions the key", func() {
			field := Default[key.SourcesDefault]
			So(field.Pretty(), ShouldContainSubstring, key.SourcesDefault)
		})
	})
}
