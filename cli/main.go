package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"cliphub/catalog"
	"cliphub/config"
	"cliphub/metadata"
	"cliphub/playback"
	"cliphub/storage"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list":
		cmdList(args)
	case "series":
		cmdSeries(args)
	case "episodes":
		cmdEpisodes(args)
	case "add":
		cmdAdd(args)
	case "add-series":
		cmdAddSeries(args)
	case "rm":
		cmdRemove(args)
	case "rm-series":
		cmdRemoveSeries(args)
	case "import":
		cmdImport(args)
	case "export":
		cmdExport(args)
	case "play":
		cmdPlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `cliphub - personal video-link catalog

Usage:
  cliphub list [flags]                 List videos
  cliphub series                       List series
  cliphub episodes <series-id>         List a series' episodes in order
  cliphub add [flags]                  Register a video link
  cliphub add-series [flags]           Create a series
  cliphub rm <video-id>                Delete a video
  cliphub rm-series <series-id>        Delete a series (episodes become standalone)
  cliphub import <file>                Import an exported JSON bundle
  cliphub export <video-id> [flags]    Export a video (and its series) as JSON
  cliphub play <video-id>              Print the playback URL for a video
  cliphub help                         Show this help message

Examples:
  cliphub list --category Films --search bunny
  cliphub add --url https://mega.nz/file/abc123#key456 --title "Pilot" --category Séries
  cliphub add --url https://example.com/watch/42        # title prefilled from the page
  cliphub export 3f2a... -o clip.json
  cliphub import clip.json

For help on a specific command: cliphub <command> -h
`)
}

// openCatalog builds the configured KV backend and wraps it in a catalog
// store. The returned closer releases backend resources (file lock, db).
func openCatalog(cfg *config.Config) (*catalog.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err := storage.OpenSQLiteKV(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return catalog.New(kv), kv.Close, nil
	case config.BackendMemory:
		return catalog.New(storage.NewMemoryKV()), func() error { return nil }, nil
	default:
		kv, err := storage.OpenFileKV(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return catalog.New(kv), kv.Close, nil
	}
}

func mustOpen() (*catalog.Store, func() error) {
	cfg, err := config.Load()
	if err != nil {
		fatal("loading config: %v", err)
	}
	store, closer, err := openCatalog(cfg)
	if err != nil {
		fatal("opening store: %v", err)
	}
	return store, closer
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	categoryStr := fs.String("category", string(catalog.CategoryAll), "Filter by category (Tous = all)")
	search := fs.String("search", "", "Filter by search term")
	fs.Parse(args)

	store, closer := mustOpen()
	defer closer()

	videos, err := store.ListVideos()
	if err != nil {
		fatal("listing videos: %v", err)
	}

	videos = catalog.FilterByCategory(videos, catalog.Category(*categoryStr))
	videos = catalog.Search(videos, *search)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tADDED\tURL")
	for _, v := range videos {
		added := time.UnixMilli(v.AddedAt).Format("2006-01-02")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Category, added, v.URL)
	}
	w.Flush()
}

func cmdSeries(args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	fs.Parse(args)

	store, closer := mustOpen()
	defer closer()

	series, err := store.ListSeries()
	if err != nil {
		fatal("listing series: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION")
	for _, sr := range series {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sr.ID, sr.Title, sr.Description)
	}
	w.Flush()
}

func cmdEpisodes(args []string) {
	fs := flag.NewFlagSet("episodes", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing series-id")
	}

	store, closer := mustOpen()
	defer closer()

	episodes, err := store.SeriesVideos(fs.Arg(0))
	if err != nil {
		fatal("listing episodes: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EP\tID\tTITLE\tURL")
	for _, v := range episodes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.EpisodeNumber, v.ID, v.Title, v.URL)
	}
	w.Flush()
}

func cmdAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	url := fs.String("url", "", "Video URL (required)")
	title := fs.String("title", "", "Title (fetched from the page when omitted)")
	desc := fs.String("desc", "", "Description")
	thumb := fs.String("thumb", "", "Thumbnail URL")
	categoryStr := fs.String("category", string(catalog.CategoryFilms), "Category (Films, Séries, Musique, Autres)")
	seriesID := fs.String("series", "", "Series id this video belongs to")
	episode := fs.Int("episode", 0, "Episode number within the series")
	noFetch := fs.Bool("no-fetch", false, "Skip metadata prefill")
	fs.Parse(args)

	if *url == "" {
		fatal("missing --url")
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("loading config: %v", err)
	}

	if *title == "" && cfg.FetchMetadata && !*noFetch {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
		defer cancel()
		fetcher := metadata.NewFetcher(&http.Client{Timeout: cfg.FetchTimeout})
		if meta, err := fetcher.Fetch(ctx, *url); err == nil {
			*title = meta.Title
			if *desc == "" {
				*desc = meta.Description
			}
			if *thumb == "" {
				*thumb = meta.Thumbnail
			}
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not fetch page metadata: %v\n", err)
		}
	}

	store, closer, err := openCatalog(cfg)
	if err != nil {
		fatal("opening store: %v", err)
	}
	defer closer()

	video, err := store.AddVideo(catalog.NewVideo{
		Title:         *title,
		Description:   *desc,
		URL:           *url,
		Thumbnail:     *thumb,
		Category:      catalog.Category(*categoryStr),
		SeriesID:      *seriesID,
		EpisodeNumber: *episode,
	})
	if err != nil {
		fatal("adding video: %v", err)
	}
	fmt.Printf("Added %q (%s)\n", video.Title, video.ID)
}

func cmdAddSeries(args []string) {
	fs := flag.NewFlagSet("add-series", flag.ExitOnError)
	title := fs.String("title", "", "Series title (required)")
	desc := fs.String("desc", "", "Description")
	thumb := fs.String("thumb", "", "Thumbnail URL")
	fs.Parse(args)

	store, closer := mustOpen()
	defer closer()

	series, err := store.AddSeries(catalog.NewSeries{
		Title:       *title,
		Description: *desc,
		Thumbnail:   *thumb,
	})
	if err != nil {
		fatal("adding series: %v", err)
	}
	fmt.Printf("Added series %q (%s)\n", series.Title, series.ID)
}

func cmdRemove(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing video-id")
	}

	store, closer := mustOpen()
	defer closer()

	if err := store.DeleteVideo(fs.Arg(0)); err != nil {
		fatal("deleting video: %v", err)
	}
	fmt.Println("Deleted.")
}

func cmdRemoveSeries(args []string) {
	fs := flag.NewFlagSet("rm-series", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing series-id")
	}

	store, closer := mustOpen()
	defer closer()

	if err := store.DeleteSeries(fs.Arg(0)); err != nil {
		fatal("deleting series: %v", err)
	}
	fmt.Println("Deleted; its episodes are standalone videos now.")
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing bundle file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal("reading bundle: %v", err)
	}

	store, closer := mustOpen()
	defer closer()

	result, err := store.ImportBundle(data)
	if err != nil {
		fatal("importing: %v", err)
	}

	switch {
	case result.Empty():
		fmt.Println("Nothing to import.")
	case result.Imported():
		if result.Series != nil {
			fmt.Printf("Imported series %q (%s)\n", result.Series.Title, result.Series.ID)
		}
		if result.Video != nil {
			fmt.Printf("Imported video %q (%s)\n", result.Video.Title, result.Video.ID)
		}
		fallthrough
	default:
		if result.SeriesSkipped {
			fmt.Println("Series skipped: a series with that title already exists.")
		}
		if result.VideoSkipped {
			fmt.Println("Video skipped: a video with that URL already exists.")
		}
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing video-id")
	}

	store, closer := mustOpen()
	defer closer()

	data, err := store.ExportVideo(fs.Arg(0))
	if err != nil {
		fatal("exporting: %v", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fatal("creating %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintln(w, string(data))
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		fatal("missing video-id")
	}

	store, closer := mustOpen()
	defer closer()

	video, err := store.GetVideo(fs.Arg(0))
	if err != nil {
		fatal("looking up video: %v", err)
	}

	switch playback.Classify(video.URL) {
	case playback.KindEmbed:
		embed, _ := playback.EmbedURL(video.URL)
		fmt.Printf("Embedded viewer: %s\n", embed)
	case playback.KindDirect:
		fmt.Printf("Direct media: %s\n", video.URL)
	default:
		fmt.Printf("Open externally: %s\n", video.URL)
	}
}
