package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPublicLinkKey(t *testing.T) {
	a := &awsS3{bucket: "nutrition-archive", region: "eu-west-1"}
	assert.Equal(t,
		"https://nutrition-archive.s3.eu-west-1.amazonaws.com/usda/run/171077.json",
		a.GetPublicLinkKey("/usda/run/171077.json"),
	)
}
