package contracts

type DownloadProgress struct {
	BytesReceived int64
	TotalBytes    int64
}

// Indeterminate reports whether the server did not announce a content length.
func (this DownloadProgress) Indeterminate() bool {
	return this.TotalBytes <= 0
}

func (this DownloadProgress) Percent() float64 {
	if this.Indeterminate() {
		return 0
	}
	return float64(this.BytesReceived) * 100 / float64(this.TotalBytes)
}

// ProgressSink receives a report after every chunk. The summary is a
// human readable rendition of the counters ("1.5 MB / 130 MB").
type ProgressSink interface {
	Start(label string)
	Progress(progress DownloadProgress, summary string)
	Finish(progress DownloadProgress, summary string)
}
