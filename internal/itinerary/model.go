// README: Structured multi-day itinerary produced by the model and stored with a travel plan.
package itinerary

import "encoding/json"

type Program struct {
	Title       string   `json:"title"`
	Days        []Day    `json:"days"`
	Budget      string   `json:"budget,omitempty"`
	Season      string   `json:"season,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	TravelStyle string   `json:"travelStyle,omitempty"`
	Tips        []string `json:"tips,omitempty"`
	Locale      string   `json:"locale,omitempty"`
}

type Day struct {
	Day         int          `json:"day"`
	Date        string       `json:"date,omitempty"`
	Activities  []Activity   `json:"activities"`
	Restaurants []Restaurant `json:"restaurants"`
}

type Activity struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type Restaurant struct {
	Name       string `json:"name"`
	Time       string `json:"time"`
	Cuisine    string `json:"cuisine,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	Address    string `json:"address,omitempty"`
}

// Document is the stored form of a program: the model's JSON object as
// returned, including fields Program does not know about.
type Document map[string]json.RawMessage

// WithLocale returns a copy of doc carrying the locale tag.
func (d Document) WithLocale(locale string) Document {
	return d.WithTags(map[string]string{"locale": locale})
}

// WithTags returns a copy of doc with every non-empty tag stored as a
// string field. Empty tags leave the model's value in place.
func (d Document) WithTags(tags map[string]string) Document {
	out := make(Document, len(d)+len(tags))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range tags {
		if v == "" {
			continue
		}
		b, _ := json.Marshal(v)
		out[k] = b
	}
	return out
}

// Program decodes the document into the typed view. Fields with unexpected
// shapes are left zero.
func (d Document) Program() Program {
	var p Program
	b, err := json.Marshal(d)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(b, &p); err == nil {
		return p
	}
	// A single mistyped field should not hide the rest of the document.
	for key, raw := range d {
		switch key {
		case "title":
			_ = json.Unmarshal(raw, &p.Title)
		case "days":
			_ = json.Unmarshal(raw, &p.Days)
		case "budget":
			_ = json.Unmarshal(raw, &p.Budget)
		case "season":
			_ = json.Unmarshal(raw, &p.Season)
		case "theme":
			_ = json.Unmarshal(raw, &p.Theme)
		case "travelStyle":
			_ = json.Unmarshal(raw, &p.TravelStyle)
		case "tips":
			_ = json.Unmarshal(raw, &p.Tips)
		case "locale":
			_ = json.Unmarshal(raw, &p.Locale)
		}
	}
	return p
}

// FirstDay returns the first day of the document, or nil.
func (d Document) FirstDay() json.RawMessage {
	raw, ok := d["days"]
	if !ok {
		return nil
	}
	var days []json.RawMessage
	if err := json.Unmarshal(raw, &days); err != nil || len(days) == 0 {
		return nil
	}
	return days[0]
}
