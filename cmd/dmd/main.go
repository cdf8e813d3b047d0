// Command dmd downloads the minecraft-data block and biome tables used by
// worldgen's -gamedata flag.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/go-theft-craft/worldgen/pkg/gamedata"
)

// tables are the minecraft-data files gamedata.LoadDir reads.
var tables = []string{"blocks.json", "biomes.json"}

// sources maps each table to its URL on a raw file server.
func sources(base, platform, ver string) map[string]string {
	m := make(map[string]string, len(tables))
	for _, name := range tables {
		m[name] = fmt.Sprintf("%s/data/%s/%s/%s", base, platform, ver, name)
	}
	return m
}

// gitSource is the repository subdirectory holding every table of a version.
func gitSource(base, platform, ver string) string {
	return fmt.Sprintf("git::%s//data/%s/%s", base, platform, ver)
}

// fetch downloads the tables into dir.
func fetch(dir, base, platform, ver string, raw bool, log *slog.Logger) error {
	if !raw {
		// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.8
		return get.Get(dir, gitSource(base, platform, ver))
	}
	for name, url := range sources(base, platform, ver) {
		if err := get.GetFile(filepath.Join(dir, name), url); err != nil {
			return fmt.Errorf("download %s: %w", url, err)
		}
		log.Debug("downloaded", "table", name, "url", url)
	}
	return nil
}

func main() {
	var (
		base     = flag.String("base", "https://raw.githubusercontent.com/PrismarineJS/minecraft-data/master", "base url")
		raw      = flag.Bool("raw", true, "treat base as a raw file server instead of a git repository")
		platform = flag.String("platform", "pc", "platform of the data")
		ver      = flag.String("version", "1.8", "game version")
		out      = flag.String("o", "./gamedata", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *out == "" || *platform == "" || *ver == "" {
		log.Error("output dir, platform and version are required")
		os.Exit(2)
	}

	dir := filepath.Join(*out, *platform+"-"+*ver)
	if err := os.RemoveAll(dir); err != nil {
		log.Error("clear output dir", "path", dir, "error", err)
		os.Exit(1)
	}

	log.Info("start downloading tables", "path", dir)
	if err := fetch(dir, *base, *platform, *ver, *raw, log); err != nil {
		log.Error("download tables", "error", err)
		os.Exit(1)
	}

	gd, err := gamedata.LoadDir(dir)
	if err != nil {
		log.Error("downloaded tables are unusable", "path", dir, "error", err)
		os.Exit(1)
	}
	log.Info("done downloading tables", "path", dir,
		"blocks", len(gd.Blocks.All()), "biomes", len(gd.Biomes.All()))
}
