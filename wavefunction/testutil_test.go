package wavefunction_test

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// tableModel is a GenerativeModel test double with explicitly tabulated
// probabilities and energy gradients per configuration. Configurations not
// listed fall back to probability defaultP and a zero gradient. EnergyGrad
// calls are logged in order, which lets tests observe exactly which
// configurations the rotation estimator enumerated.
type tableModel struct {
	n        int
	params   *mat.VecDense
	probs    map[string]float64
	defaultP float64
	grads    map[string][]float64
	logGrads bool
	gradLog  [][]float64
	batch    *mat.Dense
	steps    int
	initSeed int64
}

func newTableModel(n, npar int) *tableModel {
	return &tableModel{
		n:        n,
		params:   mat.NewVecDense(npar, nil),
		probs:    map[string]float64{},
		defaultP: 1,
		grads:    map[string][]float64{},
		batch:    mat.NewDense(1, n, nil),
	}
}

// ckey flattens a configuration into a bit-string map key.
func ckey(v *mat.VecDense) string {
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte('0' + int(v.AtVec(i)))
	}
	return string(b)
}

func (m *tableModel) Probability(v *mat.VecDense) (float64, error) {
	if p, ok := m.probs[ckey(v)]; ok {
		return p, nil
	}
	return m.defaultP, nil
}

func (m *tableModel) ProbHiddenGivenVisible(v *mat.Dense) (*mat.Dense, error) {
	r, _ := v.Dims()
	out := mat.NewDense(r, m.n, nil)
	fill(out, 0.5)
	return out, nil
}

func (m *tableModel) ProbVisibleGivenHidden(h *mat.Dense) (*mat.Dense, error) {
	r, _ := h.Dims()
	out := mat.NewDense(r, m.n, nil)
	fill(out, 0.5)
	return out, nil
}

func (m *tableModel) EnergyGrad(v *mat.VecDense) (*mat.VecDense, error) {
	if m.logGrads {
		cp := make([]float64, v.Len())
		for i := range cp {
			cp[i] = v.AtVec(i)
		}
		m.gradLog = append(m.gradLog, cp)
	}

	if g, ok := m.grads[ckey(v)]; ok {
		buf := make([]float64, len(g))
		copy(buf, g)
		return mat.NewVecDense(len(buf), buf), nil
	}
	return mat.NewVecDense(m.params.Len(), nil), nil
}

func (m *tableModel) Parameters() *mat.VecDense {
	out := mat.NewVecDense(m.params.Len(), nil)
	out.CopyVec(m.params)
	return out
}

func (m *tableModel) SetParameters(p *mat.VecDense) error {
	if p.Len() != m.params.Len() {
		return errors.New("tableModel: parameter length mismatch")
	}
	m.params.CopyVec(p)
	return nil
}

func (m *tableModel) NumVisible() int    { return m.n }
func (m *tableModel) NumParameters() int { return m.params.Len() }

func (m *tableModel) NumChains() int {
	r, _ := m.batch.Dims()
	return r
}

func (m *tableModel) Visible() *mat.Dense { return m.batch }

func (m *tableModel) SetVisible(v *mat.Dense) error {
	m.batch = v
	return nil
}

func (m *tableModel) Step(k int) error {
	m.steps += k
	return nil
}

func (m *tableModel) InitRandomParameters(seed int64, sigma float64) {
	m.initSeed = seed
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.params.Len(); i++ {
		m.params.SetVec(i, rng.NormFloat64()*sigma)
	}
}

func fill(d *mat.Dense, x float64) {
	r, c := d.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, x)
		}
	}
}

// cfg builds a configuration vector from bits.
func cfg(bits ...float64) *mat.VecDense {
	return mat.NewVecDense(len(bits), bits)
}
