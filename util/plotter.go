package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// PlotCatalog renders a rating/review-count bar chart of the catalog as a
// standalone HTML page. Handy for eyeballing the dataset after a refresh.
func PlotCatalog(records []models.BusinessRecord, w io.Writer) error {
	names := make([]string, 0, len(records))
	ratings := make([]opts.BarData, 0, len(records))
	reviews := make([]opts.BarData, 0, len(records))
	for i := range records {
		names = append(names, records[i].Name)
		ratings = append(ratings, opts.BarData{Value: records[i].Score})
		reviews = append(reviews, opts.BarData{Value: records[i].ReviewCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Tree Services Catalog",
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Ratings and review counts",
		}),
	)

	bar.SetXAxis(names).
		AddSeries("Rating", ratings).
		AddSeries("Reviews", reviews)

	return bar.Render(w)
}
