package config

import (
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

const FileName = "whiten.ini"

type LogSection struct {
	Level string `json:"level"`
}

type PngSection struct {
	Compression string `json:"compression"`
}

type JpegSection struct {
	Quality int `json:"quality"`
}

type TiffSection struct {
	Compression string `json:"compression"`
}

type WebpSection struct {
	Lossless bool    `json:"lossless"`
	Quality  float32 `json:"quality"`
}

type Config struct {
	Log  LogSection  `json:"log"`
	Png  PngSection  `json:"png"`
	Jpeg JpegSection `json:"jpeg"`
	Tiff TiffSection `json:"tiff"`
	Webp WebpSection `json:"webp"`
}

var lock = &sync.Mutex{}
var config *Config

// GetConfig loads whiten.ini from the working directory once. A missing or
// unreadable file yields the defaults; the file is never written.
func GetConfig() *Config {
	lock.Lock()
	defer lock.Unlock()
	if config == nil {
		config = Load(FileName)
	}
	return config
}

func Default() *Config {
	return &Config{
		Log:  LogSection{Level: "info"},
		Png:  PngSection{Compression: "default"},
		Jpeg: JpegSection{Quality: 75},
		Tiff: TiffSection{Compression: "deflate"},
		Webp: WebpSection{Lossless: true, Quality: 90},
	}
}

func Load(path string) *Config {
	iniData, err := ini.Load(path)
	if err != nil {
		return Default()
	}
	return fromIni(iniData)
}

func fromIni(iniData *ini.File) *Config {
	def := Default()
	logSection := iniData.Section("log")
	pngSection := iniData.Section("png")
	jpegSection := iniData.Section("jpeg")
	tiffSection := iniData.Section("tiff")
	webpSection := iniData.Section("webp")

	cfg := &Config{}
	cfg.Log = LogSection{
		Level: strings.ToLower(logSection.Key("level").MustString(def.Log.Level)),
	}
	cfg.Png = PngSection{
		Compression: pngSection.Key("compression").In(def.Png.Compression,
			[]string{"default", "none", "speed", "best"}),
	}
	cfg.Jpeg = JpegSection{
		Quality: clamp(jpegSection.Key("quality").MustInt(def.Jpeg.Quality), 1, 100),
	}
	cfg.Tiff = TiffSection{
		Compression: tiffSection.Key("compression").In(def.Tiff.Compression,
			[]string{"deflate", "none"}),
	}
	cfg.Webp = WebpSection{
		Lossless: webpSection.Key("lossless").MustBool(def.Webp.Lossless),
		Quality:  float32(clamp(webpSection.Key("quality").MustInt(int(def.Webp.Quality)), 0, 100)),
	}
	return cfg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
