package social

import "math/rand/v2"

// posts mention the project account and are rotated at random per publish.
var posts = []string{
	"Building the future of Autonomous Systems with @konnex_world! 🤖 Excited to see robots and drones coordinating seamlessly. #Konnex #DePIN",
	"Just read about Proof-of-Physical-Work on @konnex_world. Verification for real-world tasks is a game changer! 🌍 #PoPW #Web3",
	"@konnex_world is revolutionizing decentralized logistics. Imagine drones delivering your lunch autonomously! 🍕🚁 #Logistics #AI",
	"The Robo-Kitchen concept by @konnex_world is mind-blowing. Chef bots earning stablecoins? Yes please! 👨‍🍳💸 #Robotics #Future",
	"Responsive Agriculture by @konnex_world means smarter farming with verified data. 🚜 Say hello to sustainable tech! #AgriTech #Konnex",
	"Connecting the physical and digital worlds like never before. @konnex_world is the bridge we needed. 🌉 #DePIN #IoT",
	"Earning rewards for physical work verified on-chain. @konnex_world is creating a new economy. 💰 #WorkFi #Crypto",
	"Autonomous agents collaborating on @konnex_world network. The future of work is automated and decentralized. 🤝 #AI #Automation",
	"Security and transparency in logistics? @konnex_world has solved it with blockchain verification. 📦🔒 #SupplyChain #Blockchain",
	"Checking out the @konnex_world whitepaper. The tech stack for autonomous coordination is impressive! 📄✨ #Research #DeepTech",
	"Can't wait to see @konnex_world drones in action in my city! 🏙️ Decentralized delivery is the way forward. #SmartCities #Konnex",
	"Why trust a single entity when you can trust the @konnex_world protocol? Decentralization wins. 🏆 #Trustless #Web3",
	"My robot arm is ready to work on the @konnex_world network! Monetizing hardware has never been cooler. 🦾💵 #Hardware #DePIN",
	"Data integrity is key for autonomous systems. @konnex_world ensures every byte is verified. ✅ #Data #Security",
	"Joining the revolution of physical work intelligence with @konnex_world. It's time to build! 🛠️ #Builder #Konnex",
	"From recipe to motion, @konnex_world handles the intelligence transfer perfectly. 🧠➡️🦾 #AI #Robotics",
	"Optimizing waste reduction in agriculture with @konnex_world's monitoring drones. 🍃 Green tech ftw! #Sustainability #Konnex",
	"The @konnex_world ecosystem is growing fast. Don't miss the wave of decentralized physical infrastructure networks! 🌊 #DePINSummer",
	"Smart contracts meeting real-world physics. @konnex_world is where the magic happens. ✨🧱 #SmartContracts #Physics",
	"Verifying torque and temperature on-chain? Only @konnex_world does it right. 🌡️🔧 #IoT #Tech",
	"Escrow payments unlocked automatically upon task completion. @konnex_world makes payments frictionless. 💸🔓 #DeFi #Payments",
	"Scaling autonomous fleets with @konnex_world. The coordination layer for the machine economy. 🤖🌐 #MachineEconomy",
	"Global market for physical work? @konnex_world is opening doors for everyone. 🌍🚪 #GlobalEconomy #Konnex",
	"Publish policies to compete and get paid on @konnex_world. Meritocracy in automation! 🏅 #Competition #Konnex",
	"Decentralized delivery is cheaper, faster, and fairer with @konnex_world. 📦⚡ #Delivery #Logistics",
	"Proof-of-Physical-Work is the consensus mechanism we didn't know we needed. Thanks @konnex_world! 🧱👷 #Consensus #Crypto",
	"Interoperability between different robot brands via @konnex_world. Finally, they can talk to each other! 🗣️🤖 #Interoperability",
	"Privacy in physical tasks is respected on @konnex_world. Your data, your rules. 🛡️ #Privacy #Web3",
	"Monitoring crop health with @konnex_world precision. Agriculture 4.0 is here. 🌾🤖 #AgriTech #Konnex",
	"Reducing carbon footprint with optimized logistics on @konnex_world. 🌿🚚 #GreenTech #Logistics",
}

func Posts() []string {
	return append([]string(nil), posts...)
}

// RandomPost returns one of the built-in post bodies.
func RandomPost() string {
	return posts[rand.IntN(len(posts))]
}
