package optimizer_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/usecase/optimizer"
)

func TestRange_Normalize(t *testing.T) {
	Convey("Given a normalization range", t, func() {
		r := optimizer.Range{Min: 10, Max: 20}

		Convey("Values map linearly into [0,1]", func() {
			So(r.Normalize(10), ShouldEqual, 0)
			So(r.Normalize(15), ShouldEqual, 0.5)
			So(r.Normalize(20), ShouldEqual, 1)
		})

		Convey("Out-of-range values are clamped", func() {
			So(r.Normalize(5), ShouldEqual, 0)
			So(r.Normalize(25), ShouldEqual, 1)
		})

		Convey("Invert flips the scale so cheaper is better", func() {
			So(r.Invert(10), ShouldEqual, 1)
			So(r.Invert(20), ShouldEqual, 0)
		})

		Convey("A degenerate range maps everything to the midpoint", func() {
			d := optimizer.Range{Min: 7, Max: 7}
			So(d.Normalize(7), ShouldEqual, 0.5)
			So(d.Normalize(100), ShouldEqual, 0.5)
			So(d.Invert(7), ShouldEqual, 0.5)
		})
	})
}

func TestComputeBounds(t *testing.T) {
	Convey("Given a catalog of photographers", t, func() {
		catalog := []domain.Photographer{
			{Rating: 4.0, BasePrice: 30000, ExperienceYears: 2},
			{Rating: 4.8, BasePrice: 60000, ExperienceYears: 10},
			{Rating: 4.4, BasePrice: 45000, ExperienceYears: 5},
		}

		Convey("Bounds record min and max per attribute", func() {
			b := optimizer.ComputeBounds(catalog)
			So(b.Rating, ShouldResemble, optimizer.Range{Min: 4.0, Max: 4.8})
			So(b.Price, ShouldResemble, optimizer.Range{Min: 30000, Max: 60000})
			So(b.Experience, ShouldResemble, optimizer.Range{Min: 2, Max: 10})
		})

		Convey("Every normalized value lands in [0,1]", func() {
			b := optimizer.ComputeBounds(catalog)
			for _, p := range catalog {
				for _, v := range []float64{
					b.Rating.Normalize(p.Rating),
					b.Price.Invert(p.BasePrice),
					b.Experience.Normalize(float64(p.ExperienceYears)),
				} {
					So(v, ShouldBeBetweenOrEqual, 0, 1)
				}
			}
		})

		Convey("A constant catalog column normalizes to the midpoint without dividing by zero", func() {
			same := []domain.Photographer{
				{Rating: 4.5, BasePrice: 30000, ExperienceYears: 3},
				{Rating: 4.5, BasePrice: 50000, ExperienceYears: 8},
			}
			b := optimizer.ComputeBounds(same)
			So(b.Rating.Normalize(4.5), ShouldEqual, 0.5)
		})

		Convey("An empty catalog yields a degenerate zero range", func() {
			b := optimizer.ComputeBounds(nil)
			So(b.Rating.Normalize(3), ShouldEqual, 0.5)
		})
	})
}

func TestWeights_Score(t *testing.T) {
	Convey("Given the fixed weight vector", t, func() {
		w := optimizer.Weights{Rating: 0.35, Price: 0.30, Travel: 0.15, Experience: 0.20}
		So(w.Validate(), ShouldBeNil)

		Convey("The breakdown total is the sum of the contributions", func() {
			n := optimizer.Normalized{Rating: 1, Price: 0.5, Travel: 0.2, Experience: 0.75}
			b := w.Score(n)
			So(b.RatingContribution, ShouldEqual, 0.35)
			So(b.PriceContribution, ShouldEqual, 0.15)
			So(b.TotalScore, ShouldEqual,
				b.RatingContribution+b.PriceContribution+b.TravelContribution+b.ExperienceContribution)
		})

		Convey("Total score stays in [0,1] for any normalized input", func() {
			inputs := []optimizer.Normalized{
				{},
				{Rating: 1, Price: 1, Travel: 1, Experience: 1},
				{Rating: 0.5, Price: 0.5, Travel: 0.5, Experience: 0.5},
				{Rating: 0.9, Price: 0.1, Travel: 1, Experience: 0},
			}
			for _, n := range inputs {
				So(w.Score(n).TotalScore, ShouldBeBetweenOrEqual, 0, 1)
			}
		})

		Convey("Weights that do not sum to 1 fail validation", func() {
			bad := optimizer.Weights{Rating: 0.5, Price: 0.5, Travel: 0.5, Experience: 0.5}
			So(bad.Validate(), ShouldNotBeNil)
		})

		Convey("Negative weights fail validation", func() {
			bad := optimizer.Weights{Rating: -0.2, Price: 0.6, Travel: 0.3, Experience: 0.3}
			So(bad.Validate(), ShouldNotBeNil)
		})
	})
}
