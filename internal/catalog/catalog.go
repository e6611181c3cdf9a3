package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Exercise 静态练习定义，构建期写死，运行期只读
// swagger:model Exercise
type Exercise struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Task        string   `json:"task"`
	InitialCode string   `json:"initialCode"`
	Solution    string   `json:"solution"` // 仅供展示，不参与判题（PHP 除外，按规范化全等比较）
	Hints       []string `json:"hints"`
	Points      int      `json:"points"`

	Validate func(code string) bool `json:"-"`
}

// Set 某 (语言, 难度) 下的有序练习序列
type Set struct {
	Language  string
	Level     string
	Exercises []Exercise
}

func (s *Set) Len() int {
	return len(s.Exercises)
}

// Normalize 判题前的统一规范化：转小写、去掉换行/制表/回车、
// 连续空白压成单个空格、去首尾空白。幂等。
func Normalize(code string) string {
	s := strings.ToLower(code)
	s = strings.NewReplacer("\n", "", "\t", "", "\r", "").Replace(s)
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var spaceRuns = regexp.MustCompile(`\s+`)

// LevelKey 存储用的组合键，如 "beginner-2"
func LevelKey(level string, index int) string {
	return fmt.Sprintf("%s-%d", level, index)
}

// ---- 判题谓词辅助（作用于已规范化的字符串，模式一律小写）----

func has(norm, pattern string) bool {
	return regexp.MustCompile(pattern).MatchString(norm)
}

func hasSub(norm, sub string) bool {
	return strings.Contains(norm, sub)
}

func count(norm, pattern string) int {
	return len(regexp.MustCompile(pattern).FindAllString(norm, -1))
}

// breaksToSpace 等值比较前把换行类空白换成空格，
// 否则 Normalize 直接删除换行会把相邻 token 粘连（如 <?php\necho → <?phpecho），
// 用空格代替参考答案里换行的提交就永远比不上了
var breaksToSpace = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ")

// matchesSolution PHP 系列沿用的判题方式：与参考答案做规范化全等比较，换行与空格等价
func matchesSolution(solution string) func(string) bool {
	want := Normalize(breaksToSpace.Replace(solution))
	return func(code string) bool {
		norm := Normalize(breaksToSpace.Replace(code))
		return norm != "" && norm == want
	}
}

var registry = map[string]map[string]*Set{}

func register(s *Set) {
	if registry[s.Language] == nil {
		registry[s.Language] = map[string]*Set{}
	}
	for i := range s.Exercises {
		s.Exercises[i].Index = i
	}
	registry[s.Language][s.Level] = s
}

func init() {
	for _, s := range htmlSets() {
		register(s)
	}
	for _, s := range cssSets() {
		register(s)
	}
	for _, s := range javascriptSets() {
		register(s)
	}
	for _, s := range phpSets() {
		register(s)
	}
	for _, s := range pythonSets() {
		register(s)
	}
}

// Lookup 按语言与难度取练习集
func Lookup(language, level string) (*Set, bool) {
	levels, ok := registry[language]
	if !ok {
		return nil, false
	}
	s, ok := levels[level]
	return s, ok
}

func Languages() []string {
	return []string{"html", "css", "javascript", "php", "python"}
}

func Levels() []string {
	return []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
}
