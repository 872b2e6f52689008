package contracts

type Extractor interface {
	Extract(archivePath, destination string) error
}
