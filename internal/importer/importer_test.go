package importer

import (
	"errors"
	"strings"
	"testing"

	"silzey-pos/internal/domain"
)

func TestLoad(t *testing.T) {
	csvData := `category,id,name,image,price,tag,rating
Flower,f-1,Blue Dream,https://example.com/bd.jpg,20,Hybrid,4.5
Flower,f-2,Sour Diesel,,12.345,Sativa,
,,,https://example.com/sd.jpg,,,
Edibles,e-1,Gummies,https://example.com/g.jpg,8.50,Organic,3.2,`

	menu, err := Load(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	flower, err := menu.Generate("Flower")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(flower) != 2 {
		t.Fatalf("expected 2 flower products, got %d", len(flower))
	}
	if flower[0].Price.StringFixed(2) != "20.00" || flower[0].Rating.String() != "4.5" {
		t.Fatalf("unexpected first product %+v", flower[0])
	}
	if flower[1].Price.StringFixed(2) != "12.35" || !flower[1].Rating.IsZero() {
		t.Fatalf("unexpected second product %+v", flower[1])
	}
	if flower[1].Image != "https://example.com/sd.jpg" {
		t.Fatalf("expected continuation image, got %q", flower[1].Image)
	}

	flower[0].Name = "changed"
	again, _ := menu.Generate("Flower")
	if again[0].Name != "Blue Dream" {
		t.Fatalf("generate must return a copy")
	}

	vapes, err := menu.Generate("Vapes")
	if err != nil || len(vapes) != 0 {
		t.Fatalf("expected empty vapes section, got %d %v", len(vapes), err)
	}
	if _, err := menu.Generate("Hats"); !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("expected unknown category, got %v", err)
	}

	counts := menu.Counts()
	if counts["Flower"] != 2 || counts["Edibles"] != 1 || counts["Concentrates"] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing column": "category,id,name,price\nFlower,f-1,A,1",
		"bad tag":        "category,id,name,price,tag\nFlower,f-1,A,1,Purple",
		"bad category":   "category,id,name,price,tag\nHats,f-1,A,1,Hybrid",
		"bad price":      "category,id,name,price,tag\nFlower,f-1,A,abc,Hybrid",
		"zero price":     "category,id,name,price,tag\nFlower,f-1,A,0,Hybrid",
		"negative price": "category,id,name,price,tag\nFlower,f-1,A,-2.50,Hybrid",
		"bad rating":     "category,id,name,price,tag,rating\nFlower,f-1,A,1,Hybrid,7",
		"duplicate id":   "category,id,name,price,tag\nFlower,f-1,A,1,Hybrid\nVapes,f-1,B,2,Indica",
		"missing name":   "category,id,name,price,tag\nFlower,f-1,,1,Hybrid",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
