package records

import (
	"strconv"

	"github.com/beevik/etree"
)

const (
	xmlRoot = "rules"
	xmlRule = "rule"
)

// encodeXML writes one <rule> element per record. Name and toggles are
// attributes; source, flags and replace are child elements so patterns keep
// their whitespace.
func encodeXML(recs []Record) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(xmlRoot)
	for _, rec := range recs {
		el := root.CreateElement(xmlRule)
		el.CreateAttr(FieldName, rec.Name)
		el.CreateAttr(FieldActive, strconv.FormatBool(rec.Active))
		el.CreateAttr(FieldFilterLinks, strconv.FormatBool(rec.FilterLinks))
		el.CreateElement(FieldSource).SetText(rec.Source)
		el.CreateElement(FieldFlags).SetText(rec.Flags)
		el.CreateElement(FieldReplace).SetText(rec.Replace)
	}

	settings := etree.NewIndentSettings()
	settings.Spaces = 2
	settings.PreserveLeafWhitespace = true
	doc.IndentWithSettings(settings)
	return doc.WriteToBytes()
}

// decodeXML produces the loose list shape DecodeLoose expects. Toggle
// attributes that are not valid booleans stay strings so validation rejects
// them.
func decodeXML(data []byte) (interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	items := []interface{}{}
	root := doc.Root()
	if root == nil {
		return items, nil
	}

	for _, el := range root.SelectElements(xmlRule) {
		obj := map[string]interface{}{}

		if attr := el.SelectAttr(FieldName); attr != nil {
			obj[FieldName] = attr.Value
		}
		for _, key := range []string{FieldActive, FieldFilterLinks} {
			attr := el.SelectAttr(key)
			if attr == nil {
				continue
			}
			if b, err := strconv.ParseBool(attr.Value); err == nil {
				obj[key] = b
			} else {
				obj[key] = attr.Value
			}
		}
		for _, key := range []string{FieldSource, FieldFlags, FieldReplace} {
			if child := el.SelectElement(key); child != nil {
				obj[key] = child.Text()
			}
		}

		items = append(items, obj)
	}
	return items, nil
}
