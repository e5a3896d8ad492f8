// Package schema — video.
package schema

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Video is a *VideoObject or a *Clip.
type Video interface {
	isVideo()
}

// VideoObject is a schema.org VideoObject.
type VideoObject struct {
	ContentURL   URL       `json:"contentUrl"`
	EmbedURL     URL       `json:"embedUrl"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ThumbnailURL []URL     `json:"thumbnailUrl"`
	Duration     *Duration `json:"duration,omitempty"`
	UploadDate   *Date     `json:"uploadDate,omitempty"`
}

// Clip is a schema.org Clip, a short segment of a longer video.
type Clip struct {
	Name        string `json:"name,omitempty"`
	URL         URL    `json:"url,omitempty"`
	StartOffset int64  `json:"startOffset,omitempty"`
	EndOffset   int64  `json:"endOffset,omitempty"`
}

func (*VideoObject) isVideo() {}
func (*Clip) isVideo()        {}

func (v *VideoObject) MarshalJSON() ([]byte, error) {
	type plain VideoObject
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypeVideoObject, (*plain)(v)})
}

func (c *Clip) MarshalJSON() ([]byte, error) {
	type plain Clip
	return json.Marshal(struct {
		Type string `json:"@type"`
		*plain
	}{"Clip", (*plain)(c)})
}

// decodeVideo reads a VideoObject unless the object is typed Clip. An array
// yields its first video.
func decodeVideo(path string, v gjson.Result) (Video, error) {
	switch {
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil, nil
		}
		return decodeVideo(elem(path, 0), items[0])
	case !v.IsObject():
		return nil, mismatch(path, "VideoObject or Clip", v)
	}

	o := newObject(path, v)
	for _, t := range o.types() {
		if trimSchemaOrg(t) == "Clip" {
			clip := &Clip{}
			field(o, "name", &clip.Name, decodeText)
			field(o, "url", &clip.URL, decodeURL)
			field(o, "startOffset", &clip.StartOffset, decodeInt)
			field(o, "endOffset", &clip.EndOffset, decodeInt)
			return clip, o.err
		}
	}

	video := &VideoObject{}
	require(o, "contentUrl", "URL", &video.ContentURL, decodeURL)
	require(o, "embedUrl", "URL", &video.EmbedURL, decodeURL)
	require(o, "name", "text", &video.Name, decodeText)
	require(o, "description", "text", &video.Description, decodeText)
	require(o, "thumbnailUrl", "list of URL", &video.ThumbnailURL, decodeURLs)
	field(o, "duration", &video.Duration, decodeDuration)
	field(o, "uploadDate", &video.UploadDate, decodeDate)
	return video, o.err
}
