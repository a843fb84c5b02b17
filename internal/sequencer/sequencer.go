// Package sequencer упорядочивает выбранные точки жадным методом ближайшего соседа
// и оценивает время в пути для каждого перехода.
//
// Пакет не выполняет ввода-вывода и не хранит состояния: все функции можно
// вызывать конкурентно.
package sequencer

import (
	"fmt"
	"math"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/pkg/utils"
)

// Distance - расстояние по большому кругу между точками в километрах
func Distance(a, b domain.Point) float64 {
	return utils.HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// Duration - оценка времени в пути в минутах при средней скорости режима.
// Для NaN и бесконечных расстояний возвращает 0: целое число минут не
// может нести NaN, а само расстояние в шаге остаётся как есть.
func Duration(distanceKm float64, mode domain.TravelMode) int {
	minutes := math.Round(distanceKm / mode.SpeedKmh() * 60)
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return 0
	}
	return int(minutes)
}

// Sequence строит шаги маршрута. Первая точка - фиксированный старт,
// дальше каждый раз выбирается ближайшая из непосещённых. При равных
// расстояниях побеждает точка, встретившаяся раньше во входном списке.
// Для менее чем двух точек возвращает пустой результат.
func Sequence(points []domain.Point, mode domain.TravelMode) []domain.RouteStep {
	steps, _ := walk(points, mode)
	return steps
}

// Order возвращает порядок посещения: перестановку входных точек,
// начинающуюся с points[0]
func Order(points []domain.Point, mode domain.TravelMode) []domain.Point {
	if len(points) < 2 {
		return append([]domain.Point(nil), points...)
	}
	_, order := walk(points, mode)
	return order
}

func walk(points []domain.Point, mode domain.TravelMode) ([]domain.RouteStep, []domain.Point) {
	if len(points) < 2 {
		return []domain.RouteStep{}, nil
	}

	current := points[0]
	unvisited := make([]domain.Point, len(points)-1)
	copy(unvisited, points[1:])

	steps := make([]domain.RouteStep, 0, len(points)-1)
	order := make([]domain.Point, 0, len(points))
	order = append(order, current)

	for n := 1; len(unvisited) > 0; n++ {
		nearestIdx := 0
		minDistance := Distance(current, unvisited[0])
		for i := 1; i < len(unvisited); i++ {
			if d := Distance(current, unvisited[i]); d < minDistance {
				minDistance = d
				nearestIdx = i
			}
		}

		nearest := unvisited[nearestIdx]
		steps = append(steps, domain.RouteStep{
			From:        current.Name,
			To:          nearest.Name,
			DistanceKm:  minDistance,
			DurationMin: Duration(minDistance, mode),
			Order:       n,
		})
		order = append(order, nearest)

		unvisited = append(unvisited[:nearestIdx], unvisited[nearestIdx+1:]...)
		current = nearest
	}

	return steps, order
}

// Totals суммирует расстояние и время по шагам
func Totals(steps []domain.RouteStep) (distanceKm float64, durationMin int) {
	for _, s := range steps {
		distanceKm += s.DistanceKm
		durationMin += s.DurationMin
	}
	return distanceKm, durationMin
}

// Причины отказа в Validate
const (
	ReasonOutOfRange  = "coordinates out of range"
	ReasonDuplicateID = "duplicate id"
)

// InvalidPointError описывает точку, которую нельзя упорядочить
type InvalidPointError struct {
	Index  int
	ID     string
	Reason string
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("point %d (%q): %s", e.Index, e.ID, e.Reason)
}

// Validate проверяет точки перед упорядочиванием: координаты в допустимых
// пределах (NaN и бесконечности отбрасываются) и уникальные ID.
// Sequence сам ничего не проверяет и пропускает NaN в результат.
func Validate(points []domain.Point) error {
	seen := make(map[string]struct{}, len(points))
	for i, p := range points {
		if !utils.ValidateCoordinates(p.Lat, p.Lng) {
			return &InvalidPointError{Index: i, ID: p.ID, Reason: ReasonOutOfRange}
		}
		if _, ok := seen[p.ID]; ok {
			return &InvalidPointError{Index: i, ID: p.ID, Reason: ReasonDuplicateID}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
