package apiv1_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
)

type AgeTestSuite struct {
	suite.Suite
}

func TestAgeTestSuite(t *testing.T) {
	suite.Run(t, new(AgeTestSuite))
}

func (suite *AgeTestSuite) TestMarshal() {
	encoded, err := json.Marshal(apiv1.Age{Years: pointy.Int(12)})
	suite.Require().NoError(err)
	suite.Equal(`12`, string(encoded))

	encoded, err = json.Marshal(apiv1.Age{})
	suite.Require().NoError(err)
	suite.Equal(`"NAS"`, string(encoded))
}

func (suite *AgeTestSuite) TestUnmarshal() {
	var age apiv1.Age

	suite.Require().NoError(json.Unmarshal([]byte(`18`), &age))
	suite.Equal(pointy.Int(18), age.Years)

	suite.Require().NoError(json.Unmarshal([]byte(`"NAS"`), &age))
	suite.True(age.IsNAS())

	suite.Require().ErrorIs(json.Unmarshal([]byte(`"old"`), &age), apiv1.ErrInvalidAge)
}
