package domain

import (
	"fmt"
	"time"
)

// HolidayType тип праздника
type HolidayType string

const (
	HolidayJewish   HolidayType = "jewish"
	HolidayNational HolidayType = "national"
	HolidayCustom   HolidayType = "custom"
)

// Holiday праздничный день, в который рассылка не планируется
type Holiday struct {
	Date string      `json:"date"` // YYYY-MM-DD
	Name string      `json:"name"`
	Type HolidayType `json:"type"`
}

// BuiltinHolidays фиксированный список праздников 2024 года
var BuiltinHolidays = []Holiday{
	{Date: "2024-03-24", Name: "Purim", Type: HolidayJewish},
	{Date: "2024-04-23", Name: "Passover", Type: HolidayJewish},
	{Date: "2024-04-29", Name: "Passover (Seventh Day)", Type: HolidayJewish},
	{Date: "2024-05-06", Name: "Holocaust Remembrance Day", Type: HolidayNational},
	{Date: "2024-05-13", Name: "Memorial Day", Type: HolidayNational},
	{Date: "2024-05-14", Name: "Independence Day", Type: HolidayNational},
	{Date: "2024-06-12", Name: "Shavuot", Type: HolidayJewish},
	{Date: "2024-08-13", Name: "Tisha B'Av", Type: HolidayJewish},
	{Date: "2024-10-03", Name: "Rosh Hashanah", Type: HolidayJewish},
	{Date: "2024-10-04", Name: "Rosh Hashanah (Second Day)", Type: HolidayJewish},
	{Date: "2024-10-12", Name: "Yom Kippur", Type: HolidayJewish},
	{Date: "2024-10-17", Name: "Sukkot", Type: HolidayJewish},
	{Date: "2024-10-24", Name: "Simchat Torah", Type: HolidayJewish},
}

// ValidateHolidayDate проверяет формат YYYY-MM-DD
func ValidateHolidayDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("invalid holiday date %q, expected YYYY-MM-DD", date)
	}
	return nil
}
