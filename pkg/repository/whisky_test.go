package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/WhiskyReview/pkg/catalog"
	"droscher.com/WhiskyReview/pkg/model"
	"droscher.com/WhiskyReview/pkg/repository"
)

type WhiskyTestSuite struct {
	RepositorySuite
}

func TestWhiskyTestSuite(t *testing.T) {
	suite.Run(t, new(WhiskyTestSuite))
}

func (suite *WhiskyTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *WhiskyTestSuite) TestCountWhiskies_AppliesFilter() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "whiskies" WHERE .*whiskies.name ILIKE \$1 OR whiskies.distillery ILIKE \$2.*whiskies.origin_id IN \(\$3,\$4\).*whiskies.price_range IN \(\$5\).*whiskies.abv >= \$6`).
		WithArgs(`%old\_pulteney%`, `%old\_pulteney%`, 1, 2, "₺500-₺1000", 46.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	whiskyQuery := repository.WhiskyQuery{Filter: catalog.Filter{
		Search:      " old_pulteney ",
		Origins:     []uint{1, 2},
		PriceRanges: []model.PriceRange{model.PriceRangeUpTo1000},
		AbvMin:      pointy.Float64(46),
	}}

	total, err := suite.repository.CountWhiskies(context.Background(), whiskyQuery)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
}

func (suite *WhiskyTestSuite) TestCountWhiskies_RestrictsToWhiskyIDs() {
	whiskyID := uuid.New()

	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "whiskies" WHERE whiskies.id IN \(\$1\) AND whiskies.is_top_5 = \$2`).
		WithArgs(whiskyID.String(), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	total, err := suite.repository.CountWhiskies(context.Background(), repository.WhiskyQuery{
		WhiskyIDs: []uuid.UUID{whiskyID},
		Top5Only:  true,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *WhiskyTestSuite) TestFindWhiskies_PagesAndSorts() {
	whiskyID := uuid.New()

	suite.mock.ExpectQuery(`^SELECT .* FROM "whiskies" LEFT JOIN "origins" "Origin" .* LEFT JOIN "regions" "Region" .* LEFT JOIN "types" "Type" .* WHERE whiskies.overall_rating >= \$1 ORDER BY "whiskies"."overall_rating" DESC,"whiskies"."id" LIMIT \$2 OFFSET \$3`).
		WithArgs(70, 12, 24).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "overall_rating", "Origin__id", "Origin__name"}).
			AddRow(whiskyID.String(), "Talisker 10", 88, uint(1), "Scotland"))

	whiskyQuery := repository.WhiskyQuery{Filter: catalog.Filter{MinRating: pointy.Int(70)}}
	sort := catalog.Sort{Field: catalog.SortOverallRating, Direction: catalog.Descending}

	whiskies, err := suite.repository.FindWhiskies(context.Background(), whiskyQuery, sort, 24, 12)
	suite.Require().NoError(err)
	suite.Require().Len(whiskies, 1)
	suite.Equal(whiskyID, whiskies[0].ID)
	suite.Equal("Talisker 10", whiskies[0].Name)
	suite.Equal("Scotland", whiskies[0].Origin.Name)
}

func (suite *WhiskyTestSuite) TestFindWhiskies_DefaultsToNewestFirst() {
	suite.mock.ExpectQuery(`ORDER BY "whiskies"."created_at" DESC,"whiskies"."id" LIMIT \$1$`).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	whiskies, err := suite.repository.FindWhiskies(context.Background(), repository.WhiskyQuery{}, catalog.Sort{}, 0, 8)
	suite.Require().NoError(err)
	suite.Empty(whiskies)
}

func (suite *WhiskyTestSuite) TestFindWhiskyIDsByFlavorTags_NoTagsNoQuery() {
	whiskyIDs, err := suite.repository.FindWhiskyIDsByFlavorTags(context.Background(), nil)
	suite.Require().NoError(err)
	suite.NotNil(whiskyIDs)
	suite.Empty(whiskyIDs)
}

func (suite *WhiskyTestSuite) TestFindWhiskyIDsByFlavorTags_MatchesAnyTag() {
	first, second := uuid.New(), uuid.New()

	suite.mock.ExpectQuery(`^SELECT DISTINCT "whisky_id" FROM "whisky_flavor_tags" WHERE flavor_tag_id IN \(\$1,\$2\)`).
		WithArgs(4, 9).
		WillReturnRows(sqlmock.NewRows([]string{"whisky_id"}).AddRow(first.String()).AddRow(second.String()))

	whiskyIDs, err := suite.repository.FindWhiskyIDsByFlavorTags(context.Background(), []uint{4, 9})
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{first, second}, whiskyIDs)
}

func (suite *WhiskyTestSuite) TestGetWhiskyByID_NotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "whiskies" (.+) WHERE whiskies.id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	whisky, err := suite.repository.GetWhiskyByID(context.Background(), uuid.New())
	suite.Require().ErrorIs(err, repository.ErrWhiskyNotFound)
	suite.Nil(whisky)
}

func (suite *WhiskyTestSuite) TestSaveWhisky_CreatesWithIDAndTags() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "whiskies"`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`^DELETE FROM "whisky_flavor_tags" WHERE whisky_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(`^INSERT INTO "whisky_flavor_tags" \("whisky_id","flavor_tag_id"\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
		WithArgs(sqlmock.AnyArg(), 2, sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectCommit()

	whisky := model.Whisky{
		Name:          "Lagavulin 16",
		OriginID:      1,
		TypeID:        1,
		ABV:           43,
		Age:           pointy.Int(16),
		AgeStatement:  true,
		PriceRange:    model.PriceRangeAbove2500,
		OverallRating: 92,
		Notes:         "Peat and sherry",
		TastingDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	saved, err := suite.repository.SaveWhisky(context.Background(), whisky, []uint{5, 2, 5})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, saved.ID)
}

func (suite *WhiskyTestSuite) TestSaveWhisky_UpdateClearsOtherWeeklyPicks() {
	whiskyID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET .* WHERE "id" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`^DELETE FROM "whisky_flavor_tags" WHERE whisky_id = \$1`).
		WithArgs(whiskyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET "is_whisky_of_week"=\$1,"updated_at"=\$2 WHERE id <> \$3 AND is_whisky_of_week = \$4`).
		WithArgs(false, sqlmock.AnyArg(), whiskyID.String(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	whisky := model.Whisky{ID: whiskyID, Name: "Ardbeg 10", OriginID: 1, TypeID: 1, ABV: 46, IsWhiskyOfWeek: true}

	saved, err := suite.repository.SaveWhisky(context.Background(), whisky, nil)
	suite.Require().NoError(err)
	suite.Equal(whiskyID, saved.ID)
}

func (suite *WhiskyTestSuite) TestSaveWhisky_UpdateOfMissingRowRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	whisky := model.Whisky{ID: uuid.New(), Name: "Ghost", OriginID: 1, TypeID: 1, ABV: 40}

	saved, err := suite.repository.SaveWhisky(context.Background(), whisky, []uint{1})
	suite.Require().ErrorIs(err, repository.ErrWhiskyNotFound)
	suite.Nil(saved)
}

func (suite *WhiskyTestSuite) TestDeleteWhisky_RemovesLinksThenRow() {
	whiskyID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "whisky_flavor_tags" WHERE whisky_id = \$1`).
		WithArgs(whiskyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectExec(`^DELETE FROM "whiskies" WHERE id = \$1`).
		WithArgs(whiskyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeleteWhisky(context.Background(), whiskyID))
}

func (suite *WhiskyTestSuite) TestDeleteWhisky_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "whisky_flavor_tags"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(`^DELETE FROM "whiskies"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	suite.ErrorIs(suite.repository.DeleteWhisky(context.Background(), uuid.New()), repository.ErrWhiskyNotFound)
}

func (suite *WhiskyTestSuite) TestSetWeeklyPick_FlagsOneAndClearsOthers() {
	whiskyID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET "is_whisky_of_week"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), whiskyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET "is_whisky_of_week"=\$1,"updated_at"=\$2 WHERE id <> \$3`).
		WithArgs(false, sqlmock.AnyArg(), whiskyID.String(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.SetWeeklyPick(context.Background(), whiskyID))
}

func (suite *WhiskyTestSuite) TestSetWeeklyPick_UnknownWhiskyChangesNothing() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET "is_whisky_of_week"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	suite.ErrorIs(suite.repository.SetWeeklyPick(context.Background(), uuid.New()), repository.ErrWhiskyNotFound)
}

func (suite *WhiskyTestSuite) TestSetTop5_UpdatesFlag() {
	whiskyID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "whiskies" SET "is_top_5"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), whiskyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.SetTop5(context.Background(), whiskyID, true))
}

func (suite *WhiskyTestSuite) TestCountTop5() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "whiskies" WHERE is_top_5 = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	total, err := suite.repository.CountTop5(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
}
