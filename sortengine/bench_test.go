package sortengine_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vgrid-io/vgrid/datamodel"
	"github.com/vgrid-io/vgrid/sortengine"
)

func buildBenchData(n int) []sortengine.Record {
	r := rand.New(rand.NewSource(1))
	data := make([]sortengine.Record, n)
	depts := []string{"eng", "ops", "sales", "hr"}
	for i := range data {
		data[i] = sortengine.Record{
			"dept": datamodel.Text(depts[r.Intn(len(depts))]),
			"age":  datamodel.Int64(int64(r.Intn(60) + 20)),
		}
	}

	return data
}

func BenchmarkSortTwoKeys(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		data := buildBenchData(n)
		model := sortengine.SortModel{Columns: []sortengine.SortColumn{
			{Field: "dept", Direction: sortengine.Ascending, Priority: 0},
			{Field: "age", Direction: sortengine.Descending, Priority: 1},
		}}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sortengine.Sort(data, model)
			}
		})
	}
}
