package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateLocationRequest_CityID(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want *string
	}{
		{"字符串形态取为城市ID", `"city-001"`, strPtr("city-001")},
		{"嵌套对象整体忽略", `{"_id":"city-001","Name":"泉城"}`, nil},
		{"数组忽略", `["city-001"]`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &UpdateLocationRequest{City: json.RawMessage(tc.raw)}
			got := req.CityID()
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("期望 nil，实际=%s", *got)
			case tc.want != nil && got == nil:
				t.Errorf("期望 %s，实际 nil", *tc.want)
			case tc.want != nil && got != nil && *got != *tc.want:
				t.Errorf("期望 %s，实际=%s", *tc.want, *got)
			}
		})
	}
}

func TestUpdateLocationRequest_CityID_Absent(t *testing.T) {
	req := &UpdateLocationRequest{}
	if got := req.CityID(); got != nil {
		t.Errorf("City 未出现时应返回 nil，实际=%s", *got)
	}
}

func TestLocationListRequest_GetLimit(t *testing.T) {
	cases := []struct {
		limit string
		want  int
	}{
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"0", 0},
		{"7", 7},
	}
	for _, tc := range cases {
		req := &LocationListRequest{Limit: tc.limit}
		if got := req.GetLimit(); got != tc.want {
			t.Errorf("limit=%q 期望 %d，实际=%d", tc.limit, tc.want, got)
		}
	}
}

func TestLocationListRequest_GetKeyword(t *testing.T) {
	req := &LocationListRequest{Keyword: "  泉水  "}
	if got := req.GetKeyword(); got != "泉水" {
		t.Errorf("关键字应去除首尾空白，实际=%q", got)
	}
}

func TestTemplateListRequest_Defaults(t *testing.T) {
	req := &TemplateListRequest{Page: "0", Limit: "-5"}
	if got := req.GetPage(); got != 1 {
		t.Errorf("非法page应回落为1，实际=%d", got)
	}
	if got := req.GetLimit(); got != 10 {
		t.Errorf("非法limit应回落为10，实际=%d", got)
	}
	if got := req.GetOffset(); got != 0 {
		t.Errorf("首页偏移应为0，实际=%d", got)
	}
}

func TestTemplateListRequest_Offset(t *testing.T) {
	req := &TemplateListRequest{Page: "3", Limit: "10"}
	if got := req.GetOffset(); got != 20 {
		t.Errorf("第3页偏移应为20，实际=%d", got)
	}
}

func strPtr(s string) *string { return &s }
