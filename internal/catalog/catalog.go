// Package catalog holds the pre-populated chore set seeded for each new
// parent account. Payments are rough effort-proportional decimal amounts.
package catalog

import "chorejar/internal/model"

type Chore struct {
	Title       string
	Description string
	Frequency   model.Frequency
	Type        model.ChoreType
	Payment     string
}

// Chores returns the seed catalog. Callers must not mutate the entries.
func Chores() []Chore {
	return seedChores
}

var seedChores = []Chore{
	// Daily individual chores (personal responsibility)
	{"Make Your Bed", "Straighten sheets, arrange pillows, and tidy your bed", model.FrequencyDaily, model.ChoreIndividual, "0.50"},
	{"Brush Teeth (Morning & Night)", "Brush teeth thoroughly twice a day", model.FrequencyDaily, model.ChoreIndividual, "0.25"},
	{"Put Dirty Clothes in Hamper", "Place all dirty clothes in the laundry hamper", model.FrequencyDaily, model.ChoreIndividual, "0.25"},
	{"Tidy Your Bedroom", "Pick up toys, books, and keep room organized", model.FrequencyDaily, model.ChoreIndividual, "0.75"},
	{"Pack Your School Bag", "Prepare and pack school bag for the next day", model.FrequencyDaily, model.ChoreIndividual, "0.50"},
	{"Hang Up Your Coat", "Hang coat and put away shoes when coming home", model.FrequencyDaily, model.ChoreIndividual, "0.25"},
	{"Feed Your Pet", "Feed and provide fresh water for your pet", model.FrequencyDaily, model.ChoreIndividual, "0.75"},
	{"Complete Homework", "Finish all assigned homework before playtime", model.FrequencyDaily, model.ChoreIndividual, "1.00"},

	// Daily first-come chores (one completion covers the household)
	{"Set the Table", "Set plates, utensils, and napkins for dinner", model.FrequencyDaily, model.ChoreFirstCome, "1.00"},
	{"Clear the Table", "Remove dishes and wipe down table after meals", model.FrequencyDaily, model.ChoreFirstCome, "1.00"},
	{"Load the Dishwasher", "Load dirty dishes into dishwasher properly", model.FrequencyDaily, model.ChoreFirstCome, "1.25"},
	{"Unload the Dishwasher", "Put away clean dishes and utensils", model.FrequencyDaily, model.ChoreFirstCome, "1.25"},
	{"Wipe Kitchen Counters", "Clean and wipe down all kitchen countertops", model.FrequencyDaily, model.ChoreFirstCome, "0.75"},
	{"Sweep Kitchen Floor", "Sweep the kitchen floor to remove crumbs and dirt", model.FrequencyDaily, model.ChoreFirstCome, "1.00"},
	{"Take Out Kitchen Trash", "Empty kitchen trash and replace with new bag", model.FrequencyDaily, model.ChoreFirstCome, "0.75"},
	{"Water Indoor Plants", "Water all indoor plants as needed", model.FrequencyDaily, model.ChoreFirstCome, "0.50"},
	{"Bring in the Mail", "Collect mail from mailbox and bring inside", model.FrequencyDaily, model.ChoreFirstCome, "0.50"},
	{"Tidy Living Room", "Pick up items and straighten living room", model.FrequencyDaily, model.ChoreFirstCome, "1.00"},

	// Weekly individual chores
	{"Change Your Bed Sheets", "Remove and replace bed sheets and pillowcases", model.FrequencyWeekly, model.ChoreIndividual, "2.00"},
	{"Organize Your Closet", "Arrange clothes and shoes neatly in closet", model.FrequencyWeekly, model.ChoreIndividual, "2.50"},
	{"Dust Your Bedroom", "Dust all surfaces in your bedroom", model.FrequencyWeekly, model.ChoreIndividual, "1.50"},
	{"Vacuum Your Bedroom", "Vacuum or sweep your bedroom floor", model.FrequencyWeekly, model.ChoreIndividual, "2.00"},

	// Weekly first-come chores
	{"Vacuum Living Areas", "Vacuum all carpeted living areas in the house", model.FrequencyWeekly, model.ChoreFirstCome, "3.00"},
	{"Mop Hard Floors", "Mop kitchen, bathroom, and hallway floors", model.FrequencyWeekly, model.ChoreFirstCome, "3.50"},
	{"Clean Bathroom Mirror", "Clean and polish bathroom mirrors", model.FrequencyWeekly, model.ChoreFirstCome, "1.50"},
	{"Clean Bathroom Sink", "Scrub and clean bathroom sink and faucet", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Clean Toilet", "Clean and sanitize toilet bowl and seat", model.FrequencyWeekly, model.ChoreFirstCome, "2.50"},
	{"Clean Bathtub/Shower", "Scrub bathtub or shower walls and floor", model.FrequencyWeekly, model.ChoreFirstCome, "3.00"},
	{"Dust Living Room", "Dust all furniture and surfaces in living room", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Dust Dining Room", "Dust dining table, chairs, and other surfaces", model.FrequencyWeekly, model.ChoreFirstCome, "1.50"},
	{"Clean Windows (Interior)", "Clean inside of windows throughout the house", model.FrequencyWeekly, model.ChoreFirstCome, "3.50"},
	{"Organize Entryway", "Tidy shoes, coats, and organize entryway area", model.FrequencyWeekly, model.ChoreFirstCome, "1.50"},
	{"Take Out All Trash Bins", "Empty all trash bins in house and replace bags", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Take Out Recycling", "Sort and take recycling to curb or bin", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Wipe Down Light Switches", "Clean light switches and door handles", model.FrequencyWeekly, model.ChoreFirstCome, "1.00"},
	{"Organize Pantry", "Straighten and organize pantry shelves", model.FrequencyWeekly, model.ChoreFirstCome, "2.50"},
	{"Clean Microwave", "Clean inside and outside of microwave", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Wipe Down Appliances", "Clean exterior of refrigerator, stove, dishwasher", model.FrequencyWeekly, model.ChoreFirstCome, "2.00"},
	{"Water Outdoor Plants", "Water garden, lawn, or outdoor plants", model.FrequencyWeekly, model.ChoreFirstCome, "2.50"},
	{"Sweep Garage", "Sweep garage floor and organize items", model.FrequencyWeekly, model.ChoreFirstCome, "2.50"},
	{"Wash Family Car", "Wash and dry the family car", model.FrequencyWeekly, model.ChoreFirstCome, "5.00"},

	// Monthly first-come chores (bigger jobs)
	{"Clean Out Refrigerator", "Remove expired items and wipe down shelves", model.FrequencyMonthly, model.ChoreFirstCome, "4.00"},
	{"Deep Clean Oven", "Clean inside of oven thoroughly", model.FrequencyMonthly, model.ChoreFirstCome, "5.00"},
	{"Organize Garage", "Organize and tidy garage space", model.FrequencyMonthly, model.ChoreFirstCome, "6.00"},
	{"Clean Baseboards", "Wipe down baseboards throughout the house", model.FrequencyMonthly, model.ChoreFirstCome, "4.00"},
	{"Wash Windows (Exterior)", "Clean outside of windows", model.FrequencyMonthly, model.ChoreFirstCome, "5.00"},
	{"Clean Ceiling Fans", "Dust and clean all ceiling fan blades", model.FrequencyMonthly, model.ChoreFirstCome, "3.00"},
	{"Organize Toy Room", "Sort, organize, and donate unused toys", model.FrequencyMonthly, model.ChoreFirstCome, "4.00"},
	{"Vacuum Under Furniture", "Move furniture and vacuum underneath", model.FrequencyMonthly, model.ChoreFirstCome, "4.00"},
	{"Clean Air Vents", "Dust and wipe air vents and returns", model.FrequencyMonthly, model.ChoreFirstCome, "3.00"},
	{"Mow the Lawn", "Mow grass in front and back yard", model.FrequencyMonthly, model.ChoreFirstCome, "8.00"},
	{"Rake Leaves", "Rake and bag leaves from yard", model.FrequencyMonthly, model.ChoreFirstCome, "6.00"},
	{"Weed Garden Beds", "Pull weeds from garden and flower beds", model.FrequencyMonthly, model.ChoreFirstCome, "5.00"},
	{"Organize Linen Closet", "Fold and organize towels and linens", model.FrequencyMonthly, model.ChoreFirstCome, "3.00"},
	{"Clean Out Car Interior", "Vacuum and clean inside of family car", model.FrequencyMonthly, model.ChoreFirstCome, "4.00"},
}
