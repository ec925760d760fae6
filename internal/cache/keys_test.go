package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "category",
			objectType:  "list",
			identifier:  "all",
			paramsKey:   nil,
			expectedKey: "quizdeck:category:list:all",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "list",
			identifier:  "all",
			paramsKey:   []string{},
			expectedKey: "quizdeck:quiz:list:all",
		},
		{
			name:        "with one paramsKey",
			serviceName: "question",
			objectType:  "filtered",
			identifier:  "abc",
			paramsKey:   []string{"medium"},
			expectedKey: "quizdeck:question:filtered:abc:medium",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "question",
			objectType:  "filtered",
			identifier:  "abc",
			paramsKey:   []string{"medium", "5"},
			expectedKey: "quizdeck:question:filtered:abc:medium_5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
