package playback

import "testing"

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "mega file link",
			in:   "https://mega.nz/file/aBc123#keyKEYkey",
			want: "https://mega.nz/embed/aBc123#keyKEYkey",
			ok:   true,
		},
		{
			name: "www host",
			in:   "https://www.mega.nz/file/xyz#k",
			want: "https://www.mega.nz/embed/xyz#k",
			ok:   true,
		},
		{
			name: "legacy co.nz host",
			in:   "https://mega.co.nz/file/xyz#k",
			want: "https://mega.co.nz/embed/xyz#k",
			ok:   true,
		},
		{name: "missing key fragment", in: "https://mega.nz/file/aBc123"},
		{name: "not a file path", in: "https://mega.nz/folder/aBc123#k"},
		{name: "extra path segment", in: "https://mega.nz/file/a/b#k"},
		{name: "empty file id", in: "https://mega.nz/file/#k"},
		{name: "other host", in: "https://example.com/file/aBc123#k"},
		{name: "direct media file", in: "https://example.com/clip.mp4"},
		{name: "unparseable", in: "://nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EmbedURL(tt.in)
			if ok != tt.ok {
				t.Fatalf("EmbedURL(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"https://mega.nz/file/aBc123#key", KindEmbed},
		{"https://example.com/movie.mp4", KindDirect},
		{"https://example.com/movie.MP4", KindDirect},
		{"https://example.com/audio.mp3", KindDirect},
		{"https://www.youtube.com/watch?v=abc", KindExternal},
		{"https://mega.nz/file/aBc123", KindExternal}, // no key, no viewer
		{"://nope", KindExternal},
	}

	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
