package artifacts

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func softmaxOf(margins ...float64) []float64 {
	var sum float64
	out := make([]float64, len(margins))
	for i, m := range margins {
		out[i] = math.Exp(m)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func featureVector(values map[int]float64) domain.FeatureVector {
	f := make(domain.FeatureVector, 15)
	for i, v := range values {
		f[i] = v
	}
	return f
}

func TestLoadXGBoostClassifier(t *testing.T) {
	c, err := LoadXGBoostClassifier("testdata/classifier.json")
	require.NoError(t, err)
	assert.Equal(t, 15, c.InputWidth())
	assert.Equal(t, 5, c.NumClasses())

	tests := map[string]struct {
		features domain.FeatureVector
		want     []float64
	}{
		"left-branches": {
			features: featureVector(map[int]float64{0: 0.3, 14: 10}),
			want:     softmaxOf(0.7, 0.5, 0.6, 0.3, 0.2),
		},
		"right-branches": {
			features: featureVector(map[int]float64{0: 0.9, 14: 558}),
			want:     softmaxOf(0.4, 0.5, 0.6, 0.3, 1.4),
		},
		"split-value-goes-right": {
			features: featureVector(map[int]float64{0: 0.5, 14: 100}),
			want:     softmaxOf(0.4, 0.5, 0.6, 0.3, 1.4),
		},
		"missing-values-follow-default": {
			features: featureVector(map[int]float64{0: math.NaN(), 14: math.NaN()}),
			want:     softmaxOf(0.7, 0.5, 0.6, 0.3, 1.4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := c.PredictProba(tt.features)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-6)

			var sum float64
			for _, p := range got {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestXGBoostClassifier_PredictProba_WidthMismatch(t *testing.T) {
	c, err := LoadXGBoostClassifier("testdata/classifier.json")
	require.NoError(t, err)

	_, err = c.PredictProba(make(domain.FeatureVector, 14))

	var infErr *domain.InferenceErr
	require.True(t, errors.As(err, &infErr))
	assert.Contains(t, err.Error(), "expected 15, got 14")
}

func TestXGBoostClassifier_NotLoaded(t *testing.T) {
	var c *XGBoostClassifier
	_, err := c.PredictProba(nil)

	var cfgErr *domain.ConfigurationErr
	assert.True(t, errors.As(err, &cfgErr))
}

const binaryModel = `{
  "learner": {
    "learner_model_param": {"base_score": "%s", "num_class": "0", "num_feature": "2"},
    "objective": {"name": "binary:logistic"},
    "gradient_booster": {"name": "gbtree", "model": {
      "tree_info": [0],
      "trees": [{
        "left_children": [1, -1, -1], "right_children": [2, -1, -1],
        "split_indices": [1, 0, 0], "split_conditions": [0.5, -1.0986123, 1.0986123],
        "default_left": [true, false, false]
      }]
    }}
  }
}`

func TestParseXGBoostClassifier_Binary(t *testing.T) {
	c, err := ParseXGBoostClassifier([]byte(fmt.Sprintf(binaryModel, "5E-1")))
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumClasses())

	got, err := c.PredictProba(domain.FeatureVector{0, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, got, 1e-6)

	got, err = c.PredictProba(domain.FeatureVector{0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, got, 1e-6)
}

func TestParseXGBoostClassifier_VectorBaseScore(t *testing.T) {
	model := `{"learner":{
	  "learner_model_param":{"base_score":"[1E0,0E0,0E0]","num_class":"3","num_feature":"1"},
	  "objective":{"name":"multi:softmax"},
	  "gradient_booster":{"name":"gbtree","model":{"tree_info":[0,1,2],"trees":[
	    {"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0]},
	    {"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0]},
	    {"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0]}
	  ]}}}}`

	c, err := ParseXGBoostClassifier([]byte(model))
	require.NoError(t, err)

	got, err := c.PredictProba(domain.FeatureVector{0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, softmaxOf(1, 0, 0), got, 1e-9)
}

func TestParseXGBoostClassifier_Errors(t *testing.T) {
	leafTree := `{"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0]}`
	wrap := func(param, objective, booster, treeInfo, trees string) string {
		return `{"learner":{"learner_model_param":` + param + `,"objective":{"name":"` + objective +
			`"},"gradient_booster":{"name":"` + booster + `","model":{"tree_info":` + treeInfo +
			`,"trees":[` + trees + `]}}}}`
	}
	okParam := `{"base_score":"5E-1","num_class":"2","num_feature":"2"}`

	tests := map[string]struct {
		input     string
		expectErr string
	}{
		"invalid-json": {
			input:     `{"learner":`,
			expectErr: "decode classifier artifact",
		},
		"linear-booster": {
			input:     wrap(okParam, "multi:softprob", "gblinear", "[0]", leafTree),
			expectErr: "unsupported gradient booster",
		},
		"regression-objective": {
			input:     wrap(okParam, "reg:squarederror", "gbtree", "[0]", leafTree),
			expectErr: "unsupported objective",
		},
		"bad-num-feature": {
			input:     wrap(`{"base_score":"5E-1","num_class":"2","num_feature":"x"}`, "multi:softprob", "gbtree", "[0]", leafTree),
			expectErr: "invalid num_feature",
		},
		"bad-num-class": {
			input:     wrap(`{"base_score":"5E-1","num_class":"1","num_feature":"2"}`, "multi:softprob", "gbtree", "[0]", leafTree),
			expectErr: "invalid num_class",
		},
		"bad-base-score": {
			input:     wrap(`{"base_score":"half","num_class":"2","num_feature":"2"}`, "multi:softprob", "gbtree", "[0]", leafTree),
			expectErr: "invalid base_score",
		},
		"no-trees": {
			input:     wrap(okParam, "multi:softprob", "gbtree", "[]", ""),
			expectErr: "classifier has no trees",
		},
		"tree-info-mismatch": {
			input:     wrap(okParam, "multi:softprob", "gbtree", "[0,1]", leafTree),
			expectErr: "tree_info has 2 entries for 1 trees",
		},
		"group-out-of-range": {
			input:     wrap(okParam, "multi:softprob", "gbtree", "[2]", leafTree),
			expectErr: "output group 2 of 2",
		},
		"inconsistent-node-arrays": {
			input: wrap(okParam, "multi:softprob", "gbtree", "[0]",
				`{"left_children":[-1,-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0]}`),
			expectErr: "inconsistent lengths",
		},
		"cyclic-children": {
			input: wrap(okParam, "multi:softprob", "gbtree", "[0]",
				`{"left_children":[0,-1],"right_children":[1,-1],"split_indices":[0,0],"split_conditions":[0,0],"default_left":[0,0]}`),
			expectErr: "invalid children",
		},
		"split-feature-out-of-range": {
			input: wrap(okParam, "multi:softprob", "gbtree", "[0]",
				`{"left_children":[1,-1,-1],"right_children":[2,-1,-1],"split_indices":[7,0,0],"split_conditions":[0,0,0],"default_left":[0,0,0]}`),
			expectErr: "splits on feature 7 of 2",
		},
		"categorical-split": {
			input: wrap(okParam, "multi:softprob", "gbtree", "[0]",
				`{"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":[0],"split_type":[1]}`),
			expectErr: "categorical splits are not supported",
		},
		"invalid-default-left": {
			input: wrap(okParam, "multi:softprob", "gbtree", "[0]",
				`{"left_children":[-1],"right_children":[-1],"split_indices":[0],"split_conditions":[0],"default_left":["yes"]}`),
			expectErr: "decode classifier artifact",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseXGBoostClassifier([]byte(tt.input))
			var cfgErr *domain.ConfigurationErr
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationErr, got %v", err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}
