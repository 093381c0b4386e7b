package orders

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedOrders returns the demo order collection the admin panel starts with.
func SeedOrders() []Order {
	return []Order{
		{
			ID:           "1",
			OrderNumber:  "ORD-2024-001",
			CustomerName: "Ram Sharma",
			Phone:        "+977 9841234567",
			Email:        "ram@example.com",
			Address:      "Kathmandu, Nepal",
			DeliveryType: DeliveryTypeDelivery,
			DeliveryDate: date(2024, time.January, 25),
			DeliveryTime: "2:00 PM",
			Items: []OrderItem{
				{
					ID:           "1",
					ProductID:    "vanilla-cake",
					ProductName:  "Vanilla Dream Cake",
					ProductImage: "/assets/vanilla-cake.jpg",
					Quantity:     1,
					Size:         2,
					Price:        900,
					Notes:        `Write "Happy Birthday Sita"`,
				},
				{
					ID:           "2",
					ProductID:    "birthday-balloon-set",
					ProductName:  "Birthday Balloon Set",
					ProductImage: "/assets/birthday-decor.jpg",
					Quantity:     1,
					Price:        299,
				},
			},
			Subtotal:    1199,
			DeliveryFee: 100,
			Total:       1299,
			Status:      StatusPending,
			Notes:       "Please deliver before 2 PM",
			CreatedAt:   date(2024, time.January, 20),
			UpdatedAt:   date(2024, time.January, 20),
		},
		{
			ID:           "2",
			OrderNumber:  "ORD-2024-002",
			CustomerName: "Sita Devi",
			Phone:        "+977 9851234567",
			DeliveryType: DeliveryTypePickup,
			DeliveryDate: date(2024, time.January, 26),
			DeliveryTime: "10:00 AM",
			Items: []OrderItem{
				{
					ID:           "3",
					ProductID:    "chocolate-cake",
					ProductName:  "Belgian Chocolate Cake",
					ProductImage: "/assets/chocolate-cake.jpg",
					Quantity:     1,
					Size:         3,
					Price:        1800,
				},
			},
			Subtotal:  1800,
			Total:     1800,
			Status:    StatusConfirmed,
			CreatedAt: date(2024, time.January, 21),
			UpdatedAt: date(2024, time.January, 22),
		},
		{
			ID:           "3",
			OrderNumber:  "ORD-2024-003",
			CustomerName: "Hari Prasad",
			Phone:        "+977 9861234567",
			Address:      "Lalitpur, Nepal",
			DeliveryType: DeliveryTypeDelivery,
			DeliveryDate: date(2024, time.January, 24),
			DeliveryTime: "4:00 PM",
			Items: []OrderItem{
				{
					ID:           "4",
					ProductID:    "blackforest-cake",
					ProductName:  "Black Forest Delight",
					ProductImage: "/assets/blackforest-cake.jpg",
					Quantity:     1,
					Size:         1,
					Price:        550,
				},
				{
					ID:           "5",
					ProductID:    "anniversary-banner",
					ProductName:  "Anniversary Banner & Candles",
					ProductImage: "/assets/anniversary-decor.jpg",
					Quantity:     1,
					Price:        349,
				},
			},
			Subtotal:    899,
			DeliveryFee: 100,
			Total:       999,
			Status:      StatusDelivered,
			CreatedAt:   date(2024, time.January, 18),
			UpdatedAt:   date(2024, time.January, 24),
		},
	}
}

// SeedCustomOrders returns the demo custom-order requests.
func SeedCustomOrders() []CustomOrder {
	d1 := date(2024, time.February, 14)
	d2 := date(2024, time.February, 2)
	quote := 4500
	return []CustomOrder{
		{
			ID:            "1",
			CustomerName:  "Gita Thapa",
			Phone:         "+977 9871234567",
			Email:         "gita@example.com",
			CakeDetails:   "Two-tier unicorn theme cake for my daughter's 5th birthday, pastel colors, around 4 pounds.",
			PreferredDate: &d1,
			Status:        CustomStatusNew,
			CreatedAt:     date(2024, time.January, 22),
			UpdatedAt:     date(2024, time.January, 22),
		},
		{
			ID:            "2",
			CustomerName:  "Bikash Rai",
			Phone:         "+977 9881234567",
			CakeDetails:   "Photo cake with our wedding picture, chocolate flavor, heart shaped.",
			PreferredDate: &d2,
			Status:        CustomStatusQuoted,
			AdminNotes:    "Sent design options, waiting on photo.",
			QuotedPrice:   &quote,
			CreatedAt:     date(2024, time.January, 19),
			UpdatedAt:     date(2024, time.January, 21),
		},
	}
}
