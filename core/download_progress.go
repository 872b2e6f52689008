package core

import (
	"math"
	"strconv"

	"github.com/Germanized/GradleInstaller/contracts"
)

var (
	suffixes = [5]string{"B", "KB", "MB", "GB", "TB"}
)

func round(val float64, roundOn float64, places int) (newVal float64) {
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func humanFileSize(size float64) string {
	if size < 1 {
		return "0 B"
	}
	base := math.Log(size) / math.Log(1024)
	index := int(math.Floor(base))
	if index >= len(suffixes) {
		index = len(suffixes) - 1
	}
	getSize := round(size/math.Pow(1024, float64(index)), .5, 2)
	return strconv.FormatFloat(getSize, 'f', -1, 64) + " " + suffixes[index]
}

func summarizeProgress(progress contracts.DownloadProgress) string {
	if progress.Indeterminate() {
		return humanFileSize(float64(progress.BytesReceived))
	}
	return humanFileSize(float64(progress.BytesReceived)) + " / " + humanFileSize(float64(progress.TotalBytes))
}

// progressCounter sits in the download's io.MultiWriter and reports after every write.
type progressCounter struct {
	progress contracts.DownloadProgress
	sink     contracts.ProgressSink
}

func newProgressCounter(label string, total int64, sink contracts.ProgressSink) *progressCounter {
	sink.Start(label)
	return &progressCounter{progress: contracts.DownloadProgress{TotalBytes: total}, sink: sink}
}

func (this *progressCounter) Write(p []byte) (n int, e error) {
	n = len(p)
	this.progress.BytesReceived += int64(n)
	this.sink.Progress(this.progress, summarizeProgress(this.progress))
	return
}

func (this *progressCounter) Close() error {
	this.sink.Finish(this.progress, summarizeProgress(this.progress))
	return nil
}
