package topics

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const nmfEpsilon = 1e-9

// NMF factorizes a non-negative matrix V (documents x terms) into W*H with
// multiplicative Frobenius-norm updates. Initialization is drawn from the
// seeded source, so identical input yields identical factors.
type NMF struct {
	K          int
	Iterations int
	seed       int64
}

func NewNMF(k int, seed int64) *NMF {
	return &NMF{K: k, Iterations: 200, seed: seed}
}

// Fit returns W (documents x topics) and H (topics x terms).
func (n *NMF) Fit(v *mat.Dense) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(n.seed))
	rows, cols := v.Dims()

	scale := math.Sqrt(matMean(v)/float64(n.K)) + nmfEpsilon
	w := randomDense(rows, n.K, scale, rng)
	h := randomDense(n.K, cols, scale, rng)

	var wtv, wtw, wtwh mat.Dense
	var vht, whht, wh mat.Dense

	for it := 0; it < n.Iterations; it++ {
		// H <- H .* (W^T V) ./ (W^T W H)
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		updateElem(h, &wtv, &wtwh)

		// W <- W .* (V H^T) ./ (W H H^T)
		vht.Mul(v, h.T())
		wh.Mul(w, h)
		whht.Mul(&wh, h.T())
		updateElem(w, &vht, &whht)
	}
	return w, h
}

func randomDense(r, c int, scale float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*scale + nmfEpsilon
	}
	return mat.NewDense(r, c, data)
}

func updateElem(dst, num, den *mat.Dense) {
	r, c := dst.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, dst.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEpsilon))
		}
	}
}

func matMean(m *mat.Dense) float64 {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += m.At(i, j)
		}
	}
	return sum / float64(r*c)
}
