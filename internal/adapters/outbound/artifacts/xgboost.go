package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cleitonmarx/drugfood-interactions/internal/common"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
)

// Objective is the XGBoost learning objective, which decides how margins become probabilities.
type Objective string

const (
	Objective_MultiSoftprob  Objective = "multi:softprob"
	Objective_MultiSoftmax   Objective = "multi:softmax"
	Objective_BinaryLogistic Objective = "binary:logistic"
)

// xgbModelFile is the subset of the XGBoost JSON model format (Booster.save_model) used for inference.
type xgbModelFile struct {
	Learner struct {
		LearnerModelParam struct {
			BaseScore  string `json:"base_score"`
			NumClass   string `json:"num_class"`
			NumFeature string `json:"num_feature"`
		} `json:"learner_model_param"`
		Objective struct {
			Name Objective `json:"name"`
		} `json:"objective"`
		GradientBooster struct {
			Name  string `json:"name"`
			Model struct {
				Trees    []xgbTreeFile `json:"trees"`
				TreeInfo []int         `json:"tree_info"`
			} `json:"model"`
		} `json:"gradient_booster"`
	} `json:"learner"`
}

type xgbTreeFile struct {
	LeftChildren    []int      `json:"left_children"`
	RightChildren   []int      `json:"right_children"`
	SplitIndices    []int      `json:"split_indices"`
	SplitConditions []float64  `json:"split_conditions"`
	DefaultLeft     []flexBool `json:"default_left"`
	SplitType       []int      `json:"split_type"`
}

// flexBool accepts both the 0/1 encoding of older XGBoost releases and JSON booleans.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

type xgbNode struct {
	left, right int
	feature     int
	condition   float32
	defaultLeft bool
}

type xgbTree struct {
	nodes []xgbNode
	group int
}

// XGBoostClassifier evaluates a gradient boosted tree ensemble exported as XGBoost JSON.
// It is read-only after construction and safe for concurrent use.
type XGBoostClassifier struct {
	objective  Objective
	numFeature int
	numClass   int
	baseMargin []float64
	trees      []xgbTree
}

// LoadXGBoostClassifier reads an XGBoost JSON model from path.
func LoadXGBoostClassifier(path string) (*XGBoostClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigurationErr("read classifier artifact: %v", err)
	}
	return ParseXGBoostClassifier(data)
}

// ParseXGBoostClassifier decodes and validates an XGBoost JSON model.
func ParseXGBoostClassifier(data []byte) (*XGBoostClassifier, error) {
	var f xgbModelFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, domain.NewConfigurationErr("decode classifier artifact: %v", err)
	}
	l := f.Learner

	if name := l.GradientBooster.Name; name != "" && name != "gbtree" {
		return nil, domain.NewConfigurationErr("unsupported gradient booster %q", name)
	}

	numFeature, err := strconv.Atoi(l.LearnerModelParam.NumFeature)
	if err != nil || numFeature <= 0 {
		return nil, domain.NewConfigurationErr("invalid num_feature %q", l.LearnerModelParam.NumFeature)
	}

	var numClass, groups int
	switch l.Objective.Name {
	case Objective_MultiSoftprob, Objective_MultiSoftmax:
		numClass, err = strconv.Atoi(l.LearnerModelParam.NumClass)
		if err != nil || numClass < 2 {
			return nil, domain.NewConfigurationErr("invalid num_class %q", l.LearnerModelParam.NumClass)
		}
		groups = numClass
	case Objective_BinaryLogistic:
		numClass, groups = 2, 1
	default:
		return nil, domain.NewConfigurationErr("unsupported objective %q", l.Objective.Name)
	}

	baseScores, err := parseBaseScore(l.LearnerModelParam.BaseScore, groups)
	if err != nil {
		return nil, err
	}
	baseMargin := make([]float64, groups)
	for i, s := range baseScores {
		if l.Objective.Name == Objective_BinaryLogistic {
			baseMargin[i] = common.Logit(s)
		} else {
			baseMargin[i] = s
		}
	}

	model := l.GradientBooster.Model
	if len(model.Trees) == 0 {
		return nil, domain.NewConfigurationErr("classifier has no trees")
	}
	if len(model.TreeInfo) != len(model.Trees) {
		return nil, domain.NewConfigurationErr("tree_info has %d entries for %d trees", len(model.TreeInfo), len(model.Trees))
	}

	trees := make([]xgbTree, len(model.Trees))
	for i, tf := range model.Trees {
		group := model.TreeInfo[i]
		if group < 0 || group >= groups {
			return nil, domain.NewConfigurationErr("tree %d belongs to output group %d of %d", i, group, groups)
		}
		nodes, err := buildNodes(tf, numFeature)
		if err != nil {
			return nil, domain.NewConfigurationErr("tree %d: %v", i, err)
		}
		trees[i] = xgbTree{nodes: nodes, group: group}
	}

	return &XGBoostClassifier{
		objective:  l.Objective.Name,
		numFeature: numFeature,
		numClass:   numClass,
		baseMargin: baseMargin,
		trees:      trees,
	}, nil
}

// parseBaseScore accepts a scalar ("5E-1") or, as written by XGBoost 3, a bracketed vector
// ("[1E-1,2E-1,7E-1]").
func parseBaseScore(raw string, groups int) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "0.5"
	}
	parts := strings.Split(strings.Trim(raw, "[]"), ",")

	scores := make([]float64, 0, len(parts))
	for _, p := range parts {
		s, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, domain.NewConfigurationErr("invalid base_score %q", raw)
		}
		scores = append(scores, s)
	}

	switch len(scores) {
	case groups:
		return scores, nil
	case 1:
		out := make([]float64, groups)
		for i := range out {
			out[i] = scores[0]
		}
		return out, nil
	}
	return nil, domain.NewConfigurationErr("base_score has %d values for %d output groups", len(scores), groups)
}

func buildNodes(tf xgbTreeFile, numFeature int) ([]xgbNode, error) {
	n := len(tf.LeftChildren)
	if n == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	if len(tf.RightChildren) != n || len(tf.SplitIndices) != n || len(tf.SplitConditions) != n || len(tf.DefaultLeft) != n {
		return nil, fmt.Errorf("node arrays have inconsistent lengths")
	}
	for _, st := range tf.SplitType {
		if st != 0 {
			return nil, fmt.Errorf("categorical splits are not supported")
		}
	}

	nodes := make([]xgbNode, n)
	for i := range nodes {
		left, right := tf.LeftChildren[i], tf.RightChildren[i]
		node := xgbNode{
			left:        left,
			right:       right,
			feature:     tf.SplitIndices[i],
			condition:   float32(tf.SplitConditions[i]),
			defaultLeft: bool(tf.DefaultLeft[i]),
		}
		if left != -1 {
			// Children always follow their parent; this also rules out cycles.
			if left <= i || left >= n || right <= i || right >= n {
				return nil, fmt.Errorf("node %d has invalid children (%d, %d)", i, left, right)
			}
			if node.feature < 0 || node.feature >= numFeature {
				return nil, fmt.Errorf("node %d splits on feature %d of %d", i, node.feature, numFeature)
			}
		}
		nodes[i] = node
	}
	return nodes, nil
}

// InputWidth returns the number of features the model was trained on.
func (c *XGBoostClassifier) InputWidth() int {
	return c.numFeature
}

// NumClasses returns the number of classes in the predicted distribution.
func (c *XGBoostClassifier) NumClasses() int {
	return c.numClass
}

// PredictProba returns the class probability distribution for features.
// NaN feature values are treated as missing and follow the default branch.
func (c *XGBoostClassifier) PredictProba(features domain.FeatureVector) ([]float64, error) {
	if c == nil || len(c.trees) == 0 {
		return nil, domain.NewConfigurationErr("classifier is not loaded")
	}
	if len(features) != c.numFeature {
		return nil, domain.NewInferenceErr(
			fmt.Sprintf("feature width mismatch: expected %d, got %d", c.numFeature, len(features)), nil,
		)
	}

	margins := make([]float64, len(c.baseMargin))
	copy(margins, c.baseMargin)
	for _, t := range c.trees {
		margins[t.group] += t.leaf(features)
	}

	if c.objective == Objective_BinaryLogistic {
		p := common.Sigmoid(margins[0])
		return []float64{1 - p, p}, nil
	}
	return common.Softmax(margins), nil
}

func (t xgbTree) leaf(features domain.FeatureVector) float64 {
	i := 0
	for {
		node := t.nodes[i]
		if node.left == -1 {
			return float64(node.condition)
		}
		v := features[node.feature]
		switch {
		case math.IsNaN(v):
			if node.defaultLeft {
				i = node.left
			} else {
				i = node.right
			}
		case float32(v) < node.condition:
			i = node.left
		default:
			i = node.right
		}
	}
}

var _ domain.Classifier = (*XGBoostClassifier)(nil)
