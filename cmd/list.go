package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"droscher.com/WhiskyReview/pkg/catalog"
	"droscher.com/WhiskyReview/pkg/client"
)

type ListCmd struct {
	Server  string        `default:"http://localhost:8080" help:"Base URL of the WhiskyReview server" short:"s"`
	Query   string        `help:"Catalog query string, as found in a shared catalog URL"                 short:"q"`
	Timeout time.Duration `default:"10s"                   help:"Request timeout"`
}

func (l *ListCmd) Run(cliContext *Context) error {
	logger := zap.NewNop()
	if cliContext.Debug {
		logger = developmentLogger()
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	values, err := url.ParseQuery(l.Query)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", l.Query, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.Timeout)
	defer cancel()

	browser := client.NewBrowser(client.New(l.Server, nil, logger))

	page, err := browser.Fetch(ctx, catalog.DecodeState(values))
	if err != nil {
		logger.Error("error listing whiskies", zap.Error(err))

		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tDISTILLERY\tAGE\tABV\tRATING\t")

	for _, whisky := range page.Whiskies {
		distillery := ""
		if whisky.Distillery != nil {
			distillery = *whisky.Distillery
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d %s\t\n",
			whisky.Name, distillery, whisky.Age, strconv.FormatFloat(whisky.ABV, 'f', -1, 64), whisky.OverallRating, whisky.RatingLabel)
	}

	fmt.Fprintf(writer, "page %d of %d, %d whiskies\t\t\t\t\t\n", page.Page, page.TotalPages, page.Total)

	return writer.Flush()
}
