// Package reference 提供社区内置的静态参考资料：常见病害库、农药目录与学习资源。
// 数据随服务编译打包，只读，不落数据库。
package reference

import "strings"

// Disease 描述病害库中的一条病害资料。
type Disease struct {
	ID          string   `json:"id"`          // 病害条目ID
	Name        string   `json:"name"`        // 病害名称
	Description string   `json:"description"` // 简介
	Image       string   `json:"image"`       // 示例图片URL
	RiskLevel   string   `json:"risk_level"`  // 风险等级: low / medium / high
	Symptoms    []string `json:"symptoms"`    // 典型症状
	Causes      []string `json:"causes"`      // 诱因
	Solutions   []string `json:"solutions"`   // 防治方案
}

var commonDiseases = []Disease{
	{
		ID:          "rice-blast",
		Name:        "Rice Blast",
		Description: "One of the most destructive fungal diseases of rice, capable of destroying entire fields under favorable conditions.",
		Image:       "https://images.unsplash.com/photo-1536746803623-cef87080bfc8?w=800&h=600&fit=crop",
		RiskLevel:   "high",
		Symptoms: []string{
			"Diamond-shaped lesions on leaves",
			"Gray centers with brown borders",
			"Neck rot on panicles",
		},
		Causes: []string{
			"Fungus Magnaporthe oryzae",
			"High humidity and leaf wetness",
			"Excessive nitrogen fertilization",
		},
		Solutions: []string{
			"Plant resistant varieties",
			"Apply fungicide at early tillering and heading",
			"Balance nitrogen application",
		},
	},
	{
		ID:          "wheat-rust",
		Name:        "Wheat Leaf Rust",
		Description: "A widespread fungal disease producing orange pustules on wheat leaves and reducing grain fill.",
		Image:       "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=800&h=600&fit=crop",
		RiskLevel:   "medium",
		Symptoms: []string{
			"Orange-brown pustules on upper leaf surfaces",
			"Premature leaf drying",
			"Shriveled grains",
		},
		Causes: []string{
			"Fungus Puccinia triticina",
			"Mild temperatures with dew periods",
			"Volunteer wheat harboring spores",
		},
		Solutions: []string{
			"Grow rust-resistant cultivars",
			"Remove volunteer wheat",
			"Timely foliar fungicide application",
		},
	},
	{
		ID:          "tomato-late-blight",
		Name:        "Tomato Late Blight",
		Description: "A fast-moving disease of tomato and potato that can defoliate plants within days of infection.",
		Image:       "https://images.unsplash.com/photo-1592841200221-a6898f307baa?w=800&h=600&fit=crop",
		RiskLevel:   "high",
		Symptoms: []string{
			"Water-soaked lesions on leaves and stems",
			"White mold on leaf undersides",
			"Firm brown rot on fruit",
		},
		Causes: []string{
			"Oomycete Phytophthora infestans",
			"Cool, wet weather",
			"Infected seedlings or tubers",
		},
		Solutions: []string{
			"Destroy infected plants immediately",
			"Improve air circulation between rows",
			"Preventive copper-based sprays",
		},
	},
	{
		ID:          "maize-leaf-spot",
		Name:        "Gray Leaf Spot of Maize",
		Description: "A residue-borne fungal disease of maize that thrives in no-till fields with continuous corn.",
		Image:       "https://images.unsplash.com/photo-1551754655-cd27e38d2076?w=800&h=600&fit=crop",
		RiskLevel:   "low",
		Symptoms: []string{
			"Rectangular gray lesions bounded by veins",
			"Lesions merging into large dead areas",
		},
		Causes: []string{
			"Fungus Cercospora zeae-maydis",
			"Infected crop residue on soil surface",
			"Prolonged high humidity",
		},
		Solutions: []string{
			"Rotate away from maize for at least one season",
			"Bury or remove residue",
			"Hybrid selection for tolerance",
		},
	},
}

// ListDiseases 返回病害库全部条目，keyword 非空时按名称或简介做不区分大小写的包含过滤。
func ListDiseases(keyword string) []Disease {
	if keyword == "" {
		return commonDiseases
	}
	keyword = strings.ToLower(keyword)
	matched := make([]Disease, 0, len(commonDiseases))
	for _, d := range commonDiseases {
		if strings.Contains(strings.ToLower(d.Name), keyword) ||
			strings.Contains(strings.ToLower(d.Description), keyword) {
			matched = append(matched, d)
		}
	}
	return matched
}
