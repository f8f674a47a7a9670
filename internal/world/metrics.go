package world

import "github.com/prometheus/client_golang/prometheus"

// Metrics инкапсулирует Prometheus-метрики хранилища вокселей.
// Нулевой указатель *Metrics допустим: все методы становятся no-op.
type Metrics struct {
	chunksMaterialized prometheus.Counter
	layersGrownTotal   prometheus.Counter
	slotsVisited       prometheus.Counter
	outOfBoundsTotal   prometheus.Counter
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// Если reg == nil, используется дефолтный регистр Prometheus.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		chunksMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "chunks_materialized_total",
			Help:      "Число чанков, созданных лениво при первом обращении.",
		}),
		layersGrownTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "layers_grown_total",
			Help:      "Число слоёв, добавленных при записи.",
		}),
		slotsVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "slots_visited_total",
			Help:      "Число ячеек, выданных итераторами слотов.",
		}),
		outOfBoundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "out_of_bounds_total",
			Help:      "Обращения по локальным координатам вне чанка.",
		}),
	}

	reg.MustRegister(m.chunksMaterialized, m.layersGrownTotal, m.slotsVisited, m.outOfBoundsTotal)
	return m
}

func (m *Metrics) chunkMaterialized() {
	if m == nil {
		return
	}
	m.chunksMaterialized.Inc()
}

func (m *Metrics) layersGrown(n int) {
	if m == nil {
		return
	}
	m.layersGrownTotal.Add(float64(n))
}

func (m *Metrics) slotVisited() {
	if m == nil {
		return
	}
	m.slotsVisited.Inc()
}

func (m *Metrics) outOfBounds() {
	if m == nil {
		return
	}
	m.outOfBoundsTotal.Inc()
}
