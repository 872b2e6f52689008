package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/Germanized/GradleInstaller/contracts"
)

func TestChecksumIntegrityCheckFixture(t *testing.T) {
	gunit.Run(new(ChecksumIntegrityCheckFixture), t)
}

type ChecksumIntegrityCheckFixture struct {
	*gunit.Fixture

	client  *FakeHTTPGetter
	checker *ChecksumIntegrityCheck
}

const (
	checksumAddress = "https://services.gradle.org/distributions/gradle-8.10-bin.zip.sha256"
	helloDigest     = "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969"
)

func (this *ChecksumIntegrityCheckFixture) Setup() {
	this.client = NewFakeHTTPGetter()
	this.checker = NewChecksumIntegrityCheck(this.client, time.Second*15)
}

func (this *ChecksumIntegrityCheckFixture) TestMatchingDigest() {
	this.client.responses[checksumAddress] = helloDigest + "\n"

	err := this.checker.Verify(context.Background(), checksumAddress, helloDigest)

	this.So(err, should.BeNil)
}

func (this *ChecksumIntegrityCheckFixture) TestComparisonIgnoresCase() {
	this.client.responses[checksumAddress] = strings.ToUpper(helloDigest)

	err := this.checker.Verify(context.Background(), checksumAddress, helloDigest)

	this.So(err, should.BeNil)
}

func (this *ChecksumIntegrityCheckFixture) TestMismatchIsCorruption() {
	this.client.responses[checksumAddress] = strings.Repeat("0", 64)

	err := this.checker.Verify(context.Background(), checksumAddress, helloDigest)

	this.So(errors.Is(err, contracts.CorruptArchiveErr), should.BeTrue)
	this.So(errors.Is(err, ChecksumUnavailableErr), should.BeFalse)
}

func (this *ChecksumIntegrityCheckFixture) TestUnreachableChecksum() {
	this.client.err = errors.New("no route to host")

	err := this.checker.Verify(context.Background(), checksumAddress, helloDigest)

	this.So(errors.Is(err, ChecksumUnavailableErr), should.BeTrue)
	this.So(errors.Is(err, contracts.CorruptArchiveErr), should.BeFalse)
}

func (this *ChecksumIntegrityCheckFixture) TestMalformedChecksumDocument() {
	this.client.responses[checksumAddress] = "<html>not found</html>"

	err := this.checker.Verify(context.Background(), checksumAddress, helloDigest)

	this.So(errors.Is(err, ChecksumUnavailableErr), should.BeTrue)
}
