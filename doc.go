// Package cliphub provides a personal video-link catalog.
//
// Users register external video links, optionally group them into series
// with ordered episodes, browse/search/filter them, and resolve playback
// URLs. All state persists through a synchronous string-keyed key-value
// store as two whole-collection JSON blobs; there is no backend server.
//
// Quick Start
//
// Open a store and list the catalog:
//
//	kv, err := storage.OpenFileKV("cliphub.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer kv.Close()
//
//	cat := catalog.New(kv)
//	videos, err := cat.ListVideos()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range videos {
//		fmt.Println(v.Title)
//	}
//
// Register a link:
//
//	video, err := cat.AddVideo(catalog.NewVideo{
//		Title:    "Big Buck Bunny",
//		URL:      "https://example.com/bbb.mp4",
//		Category: catalog.CategoryFilms,
//	})
//
// Filter and search compose over any video slice:
//
//	films := catalog.FilterByCategory(videos, catalog.CategoryFilms)
//	hits := catalog.Search(films, "bunny")
//
// Resolve playback:
//
//	if embed, ok := playback.EmbedURL(video.URL); ok {
//		fmt.Println("embedded viewer:", embed)
//	}
//
// Error Handling
//
// Expected conditions are sentinel errors, never panics:
//
//	if errors.Is(err, cliphub.ErrNotFound) {
//		fmt.Println("no such video")
//	}
//
// Wrapped operation context is available via errors.As:
//
//	var storeErr *cliphub.StoreError
//	if errors.As(err, &storeErr) {
//		fmt.Printf("%s %s failed: %v\n", storeErr.Op, storeErr.Entity, storeErr.Err)
//	}
//
// Configuration
//
// The cliphub CLI loads settings from, in priority order, environment
// variables, a cliphub.json config file, and defaults. A .env file in the
// working directory is honored.
//
//   - CLIPHUB_STORE_PATH: location of the persistent store
//   - CLIPHUB_BACKEND: file, sqlite, or memory
//   - CLIPHUB_FETCH_METADATA: prefill title/thumbnail from the page (true/false)
//   - CLIPHUB_FETCH_TIMEOUT: timeout for the metadata fetch
//
// Sub-packages
//
//   - catalog: the collection store and query layer
//   - storage: key-value store contract and file/sqlite/memory backends
//   - playback: embed-URL translation and link classification
//   - metadata: OpenGraph page-metadata prefill
//   - config: configuration management
//   - retry: exponential backoff retry logic
package cliphub
