package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/WhiskyReview/pkg/model"
	"droscher.com/WhiskyReview/pkg/repository"
)

type ReferenceTestSuite struct {
	RepositorySuite
}

func TestReferenceTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceTestSuite))
}

func (suite *ReferenceTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *ReferenceTestSuite) TestGetFlavorTags_OrderedByCategoryAndName() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "flavor_tags" ORDER BY category, name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category"}).
			AddRow(uint(3), "Apple", "fruit").
			AddRow(uint(1), "Peat", "smoke"))

	flavorTags, err := suite.repository.GetFlavorTags(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(flavorTags, 2)
	suite.Equal("Apple", flavorTags[0].Name)
	suite.Equal(model.FlavorCategorySmoke, flavorTags[1].Category)
}

func (suite *ReferenceTestSuite) TestGetRegions() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "regions" ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "origin_id"}).
			AddRow(uint(4), "Islay", uint(1)))

	regions, err := suite.repository.GetRegions(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(regions, 1)
	suite.Equal(uint(1), regions[0].OriginID)
}

func (suite *ReferenceTestSuite) TestGetRegionByID_NotFound() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "regions" WHERE "regions"."id" = \$1`).
		WithArgs(42, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	region, err := suite.repository.GetRegionByID(context.Background(), 42)
	suite.Require().ErrorIs(err, repository.ErrRegionNotFound)
	suite.Nil(region)
}

func (suite *ReferenceTestSuite) TestGetFlavorTagsForWhiskies_NoIDsNoQuery() {
	tags, err := suite.repository.GetFlavorTagsForWhiskies(context.Background(), nil)
	suite.Require().NoError(err)
	suite.NotNil(tags)
	suite.Empty(tags)
}

func (suite *ReferenceTestSuite) TestGetFlavorTagsForWhiskies_GroupsByWhisky() {
	first, second, untagged := uuid.New(), uuid.New(), uuid.New()

	suite.mock.ExpectQuery(`^SELECT whisky_flavor_tags.whisky_id, flavor_tags.id, flavor_tags.name, flavor_tags.category FROM "whisky_flavor_tags" INNER JOIN flavor_tags ON .* WHERE whisky_flavor_tags.whisky_id IN \(\$1,\$2,\$3\)`).
		WithArgs(first.String(), second.String(), untagged.String()).
		WillReturnRows(sqlmock.NewRows([]string{"whisky_id", "id", "name", "category"}).
			AddRow(first.String(), uint(1), "Apple", "fruit").
			AddRow(second.String(), uint(2), "Peat", "smoke").
			AddRow(first.String(), uint(3), "Vanilla", "sweet"))

	tags, err := suite.repository.GetFlavorTagsForWhiskies(context.Background(), []uuid.UUID{first, second, untagged})
	suite.Require().NoError(err)
	suite.Len(tags, 2)
	suite.Equal([]model.FlavorTag{
		{ID: 1, Name: "Apple", Category: model.FlavorCategoryFruit},
		{ID: 3, Name: "Vanilla", Category: model.FlavorCategorySweet},
	}, tags[first])
	suite.Equal([]model.FlavorTag{{ID: 2, Name: "Peat", Category: model.FlavorCategorySmoke}}, tags[second])
	suite.Empty(tags[untagged])
}
